// Package memory is a mutex-guarded implementation of storage.Storage used for local runs and tests.
// Every LoanManager call holds the lock for its whole read-check-write sequence, which gives it the
// same all-or-nothing semantics as the DynamoDB and PostgreSQL transactions.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
)

// Store keeps every table in maps.
type Store struct {
	mu          sync.Mutex
	books       map[string]models.Book
	borrowers   map[string]models.Borrower
	loans       map[string]models.Loan
	refs        map[string]string
	ledger      []models.LedgerEntry
	lateFees    *fees.Config
	connections map[string]struct{}

	now func() time.Time
}

var _ storage.Storage = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{
		books:       make(map[string]models.Book),
		borrowers:   make(map[string]models.Borrower),
		loans:       make(map[string]models.Loan),
		refs:        make(map[string]string),
		connections: make(map[string]struct{}),
		now:         time.Now,
	}
}

// GetBook retrieves a book by its ID.
func (s *Store) GetBook(_ context.Context, bookID string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	return &book, nil
}

// CreateBook adds a book with all of its copies available.
func (s *Store) CreateBook(_ context.Context, book *models.Book) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.Id == "" {
		book.Id = uuid.New().String()
	}
	if _, ok := s.books[book.Id]; ok {
		return nil, fmt.Errorf("book %s: %w", book.Id, storage.ErrAlreadyExists)
	}
	if book.TotalCopies < 1 {
		return nil, fmt.Errorf("%w: total copies must be at least one", inventory.ErrInvalidQuantity)
	}

	now := s.now()
	created := *book
	created.AvailableCopies = created.TotalCopies
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now
	s.books[created.Id] = created
	return &created, nil
}

// ListBooks retrieves all books ordered by title.
func (s *Store) ListBooks(_ context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// SetTotalCopies changes the number of copies owned.
func (s *Store) SetTotalCopies(_ context.Context, bookID string, total int64) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	updated, err := inventory.SetTotal(book, total)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.now()
	s.books[bookID] = updated
	return &updated, nil
}

// GetBorrower retrieves a borrower by ID.
func (s *Store) GetBorrower(_ context.Context, borrowerID string) (*models.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.borrowers[borrowerID]
	if !ok {
		return nil, fmt.Errorf("borrower %s: %w", borrowerID, storage.ErrNotFound)
	}
	return &b, nil
}

// CreateBorrower creates a new borrower.
func (s *Store) CreateBorrower(_ context.Context, borrower *models.Borrower) (*models.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if borrower.Id == "" {
		borrower.Id = uuid.New().String()
	}
	if _, ok := s.borrowers[borrower.Id]; ok {
		return nil, fmt.Errorf("borrower %s: %w", borrower.Id, storage.ErrAlreadyExists)
	}
	created := *borrower
	created.CreatedAt = s.now()
	s.borrowers[created.Id] = created
	return &created, nil
}

// DeleteBorrower deletes a borrower.
func (s *Store) DeleteBorrower(_ context.Context, borrowerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.borrowers[borrowerID]; !ok {
		return fmt.Errorf("borrower %s: %w", borrowerID, storage.ErrNotFound)
	}
	delete(s.borrowers, borrowerID)
	return nil
}

// ListBorrowers retrieves all borrowers ordered by name.
func (s *Store) ListBorrowers(_ context.Context) ([]models.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Borrower, 0, len(s.borrowers))
	for _, b := range s.borrowers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetLateFeeConfig returns the stored configuration, or storage.ErrNotFound.
func (s *Store) GetLateFeeConfig(_ context.Context) (fees.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lateFees == nil {
		return fees.Config{}, storage.ErrNotFound
	}
	return *s.lateFees, nil
}

// PutLateFeeConfig replaces the stored configuration.
func (s *Store) PutLateFeeConfig(_ context.Context, cfg fees.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lateFees = &cfg
	return nil
}

// ListLedgerEntries returns the most recent ledger entries, newest first.
func (s *Store) ListLedgerEntries(_ context.Context, limit int32) ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ledger)
	if limit > 0 && int(limit) < n {
		n = int(limit)
	}
	out := make([]models.LedgerEntry, 0, n)
	for i := len(s.ledger) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.ledger[i])
	}
	return out, nil
}

// AddConnection records a websocket connection.
func (s *Store) AddConnection(_ context.Context, connectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections[connectionID] = struct{}{}
	return nil
}

// RemoveConnection forgets a websocket connection.
func (s *Store) RemoveConnection(_ context.Context, connectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.connections, connectionID)
	return nil
}

// GetAllConnections lists the known websocket connections.
func (s *Store) GetAllConnections(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.connections))
	for id := range s.connections {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) appendLedger(loan *models.Loan, movement models.Movement, quantity int64, description string) {
	s.ledger = append(s.ledger, models.LedgerEntry{
		EntryID:     uuid.New().String(),
		LoanID:      loan.Id,
		RefNbr:      loan.RefNbr,
		BookID:      loan.BookId,
		Movement:    movement,
		Quantity:    quantity,
		Description: description,
		Timestamp:   s.now(),
		GSI1PK:      "LEDGER",
	})
}
