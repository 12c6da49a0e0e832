package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bookRow struct {
	Id              string    `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	TotalCopies     int64     `db:"total_copies"`
	AvailableCopies int64     `db:"available_copies"`
	Version         int64     `db:"version"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r bookRow) toModel() models.Book {
	return models.Book{
		Id:              r.Id,
		Title:           r.Title,
		Author:          r.Author,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (s *Store) getBook(ctx context.Context, q querier, bookID string, forUpdate bool) (*models.Book, error) {
	sql, args, err := selectBookQuery(bookID, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query book: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("book with ID %s: %w", bookID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read book: %w", err)
	}

	book := row.toModel()
	return &book, nil
}

// GetBook retrieves a book by its ID.
func (s *Store) GetBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.getBook(ctx, s.db, bookID, false)
}

// CreateBook adds a book with every copy available.
func (s *Store) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	if book.TotalCopies < 1 {
		return nil, fmt.Errorf("%w: total copies must be at least one", inventory.ErrInvalidQuantity)
	}
	if book.Id == "" {
		book.Id = uuid.New().String()
	}

	now := s.now()
	book.AvailableCopies = book.TotalCopies
	book.Version = 1
	book.CreatedAt = now
	book.UpdatedAt = now

	_, err := exec(ctx, s.db, func() (string, []any, error) { return insertBookQuery(book) })
	if isUniqueViolation(err, "") {
		return nil, fmt.Errorf("book with ID %s: %w", book.Id, storage.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	return book, nil
}

// ListBooks retrieves all books ordered by title.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	sql, args, err := listBooksQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	books := make([]models.Book, 0, len(list))
	for _, r := range list {
		books = append(books, r.toModel())
	}
	return books, nil
}

// SetTotalCopies changes the number of copies owned under the book's row lock.
func (s *Store) SetTotalCopies(ctx context.Context, bookID string, total int64) (*models.Book, error) {
	var updated models.Book

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		book, err := s.getBook(ctx, tx, bookID, true)
		if err != nil {
			return err
		}

		updated, err = inventory.SetTotal(*book, total)
		if err != nil {
			return err
		}
		updated.UpdatedAt = s.now()

		_, err = exec(ctx, tx, func() (string, []any, error) { return updateBookCopiesQuery(updated) })
		if err != nil {
			return fmt.Errorf("failed to update book copies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
