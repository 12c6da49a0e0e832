package storage

import (
	"context"

	"github.com/chris/library-lending/pkg/models"
)

// BookStore defines the catalog operations the lending engine depends on.
// None of them lets a caller write AvailableCopies directly.
type BookStore interface {
	// GetBook retrieves a book by its ID.
	GetBook(ctx context.Context, bookID string) (*models.Book, error)

	// CreateBook adds a book with all of its copies available.
	CreateBook(ctx context.Context, book *models.Book) (*models.Book, error)

	// ListBooks retrieves all books.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// SetTotalCopies changes the number of copies owned, shifting available copies by the same amount.
	SetTotalCopies(ctx context.Context, bookID string, total int64) (*models.Book, error)
}
