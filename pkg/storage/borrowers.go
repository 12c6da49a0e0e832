package storage

import (
	"context"

	"github.com/chris/library-lending/pkg/models"
)

// BorrowerStore defines the interface for managing the user directory.
type BorrowerStore interface {
	// GetBorrower retrieves a borrower by ID.
	GetBorrower(ctx context.Context, borrowerID string) (*models.Borrower, error)

	// CreateBorrower creates a new borrower.
	CreateBorrower(ctx context.Context, borrower *models.Borrower) (*models.Borrower, error)

	// DeleteBorrower deletes a borrower.
	DeleteBorrower(ctx context.Context, borrowerID string) error

	// ListBorrowers retrieves all borrowers from the storage.
	ListBorrowers(ctx context.Context) ([]models.Borrower, error)
}
