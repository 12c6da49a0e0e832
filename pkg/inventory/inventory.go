// Package inventory holds the copy-count rules every store applies when it reserves or
// releases copies of a book. Stores execute these rules atomically with the loan write
// that needs them; nothing else may change Book.AvailableCopies.
package inventory

import (
	"errors"
	"fmt"

	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
)

// ErrInvalidQuantity is returned for reservations or releases of fewer than one copy.
var ErrInvalidQuantity = errors.New("quantity must be at least one copy")

// Reserve takes quantity copies off the shelf.
// The book is returned unchanged together with storage.ErrInsufficientCopies when not enough are available.
func Reserve(book models.Book, quantity int64) (models.Book, error) {
	if quantity < 1 {
		return book, ErrInvalidQuantity
	}
	if book.AvailableCopies < quantity {
		return book, fmt.Errorf("%w: book %s has %d of %d requested", storage.ErrInsufficientCopies, book.Id, book.AvailableCopies, quantity)
	}
	book.AvailableCopies -= quantity
	book.Version++
	return book, nil
}

// Release puts quantity copies back on the shelf, never exceeding TotalCopies.
// It returns the number of copies actually credited.
func Release(book models.Book, quantity int64) (models.Book, int64, error) {
	if quantity < 1 {
		return book, 0, ErrInvalidQuantity
	}
	released := Releasable(book, quantity)
	book.AvailableCopies += released
	book.Version++
	return book, released, nil
}

// Releasable returns how many of quantity copies can be credited back without exceeding TotalCopies.
func Releasable(book models.Book, quantity int64) int64 {
	room := book.TotalCopies - book.AvailableCopies
	if room < 0 {
		room = 0
	}
	if quantity > room {
		return room
	}
	return quantity
}

// SetTotal applies a catalog edit of the total copy count. Available copies shift by the same delta,
// so copies currently on loan stay accounted for.
func SetTotal(book models.Book, total int64) (models.Book, error) {
	if total < 1 {
		return book, fmt.Errorf("%w: total copies must be at least one", ErrInvalidQuantity)
	}
	onLoan := book.TotalCopies - book.AvailableCopies
	if total < onLoan {
		return book, fmt.Errorf("%w: %d copies of book %s are on loan", storage.ErrInsufficientCopies, onLoan, book.Id)
	}
	book.AvailableCopies = total - onLoan
	book.TotalCopies = total
	book.Version++
	return book, nil
}

// Consistent reports whether the copy counts satisfy 0 <= available <= total.
func Consistent(book models.Book) bool {
	return book.AvailableCopies >= 0 && book.AvailableCopies <= book.TotalCopies
}
