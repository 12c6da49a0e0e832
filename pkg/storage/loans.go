package storage

import (
	"context"

	"github.com/chris/library-lending/pkg/models"
)

// LoanReader defines the interface for reading loan data.
type LoanReader interface {
	// GetLoan retrieves a loan by its ID.
	GetLoan(ctx context.Context, loanID string) (*models.Loan, error)

	// ListLoansByBorrower retrieves all loans of a borrower.
	ListLoansByBorrower(ctx context.Context, borrowerID string) ([]models.Loan, error)

	// ListLoansByStatus retrieves all loans currently in the given status.
	ListLoansByStatus(ctx context.Context, status models.LoanStatus) ([]models.Loan, error)

	// RefNumberExists reports whether any loan already uses the reference number.
	RefNumberExists(ctx context.Context, refNbr string) (bool, error)
}

// LoanManager defines the writes that move copies between the shelf and loans.
// Each call is atomic: the inventory change and the loan write commit together or not at all.
type LoanManager interface {
	// CreateLoan reserves loan.Quantity copies of loan.BookId and persists the loan.
	// It returns ErrInsufficientCopies, ErrNotFound (book) or ErrReferenceCollision without side effects.
	CreateLoan(ctx context.Context, loan *models.Loan) error

	// SaveLoan replaces prev with next, releasing `release` copies of the book in the same unit.
	// It returns ErrLoanModified when the stored loan is no longer at prev.Version.
	SaveLoan(ctx context.Context, prev, next *models.Loan, release int64) error

	// DeleteLoan removes the loan, releasing `release` copies of the book in the same unit.
	// It returns ErrNotFound when the loan is gone and ErrLoanModified when it changed since it was read.
	DeleteLoan(ctx context.Context, loan *models.Loan, release int64) error
}

// LoanStore combines the reader and manager interfaces.
type LoanStore interface {
	LoanReader
	LoanManager
}
