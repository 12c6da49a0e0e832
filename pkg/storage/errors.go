package storage

import "errors"

// ErrInsufficientCopies is returned when a book has fewer available copies than a loan requests.
var ErrInsufficientCopies = errors.New("no copies left")

// ErrNotFound is returned when a referenced loan, book or borrower does not exist.
var ErrNotFound = errors.New("not found")

// ErrReferenceCollision is returned when a loan reference number is already taken.
var ErrReferenceCollision = errors.New("loan reference number already in use")

// ErrLoanModified is returned when a loan changed between being read and being written.
var ErrLoanModified = errors.New("loan was modified concurrently")

// ErrAlreadyExists is returned when creating a record whose id is already taken.
var ErrAlreadyExists = errors.New("already exists")

// ErrBookModified is returned when a catalog edit raced another change to the same book.
var ErrBookModified = errors.New("book was modified concurrently")
