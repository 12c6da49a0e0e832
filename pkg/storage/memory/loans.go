package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
)

// GetLoan retrieves a loan by its ID.
func (s *Store) GetLoan(_ context.Context, loanID string) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
	}
	return &loan, nil
}

// ListLoansByBorrower retrieves all loans of a borrower, newest first.
func (s *Store) ListLoansByBorrower(_ context.Context, borrowerID string) ([]models.Loan, error) {
	return s.filterLoans(func(l models.Loan) bool { return l.BorrowerId == borrowerID }), nil
}

// ListLoansByStatus retrieves all loans in the given status, newest first.
func (s *Store) ListLoansByStatus(_ context.Context, status models.LoanStatus) ([]models.Loan, error) {
	return s.filterLoans(func(l models.Loan) bool { return l.Status == status }), nil
}

// RefNumberExists reports whether a loan already uses refNbr.
func (s *Store) RefNumberExists(_ context.Context, refNbr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.refs[refNbr]
	return ok, nil
}

// CreateLoan reserves the loan's copies and stores it.
func (s *Store) CreateLoan(_ context.Context, loan *models.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.refs[loan.RefNbr]; ok {
		return fmt.Errorf("%s: %w", loan.RefNbr, storage.ErrReferenceCollision)
	}
	if _, ok := s.loans[loan.Id]; ok {
		return fmt.Errorf("loan %s: %w", loan.Id, storage.ErrAlreadyExists)
	}
	book, ok := s.books[loan.BookId]
	if !ok {
		return fmt.Errorf("book %s: %w", loan.BookId, storage.ErrNotFound)
	}

	reserved, err := inventory.Reserve(book, loan.Quantity)
	if err != nil {
		return err
	}
	reserved.UpdatedAt = s.now()

	s.books[book.Id] = reserved
	s.loans[loan.Id] = *loan
	s.refs[loan.RefNbr] = loan.Id
	s.appendLedger(loan, models.RESERVE, loan.Quantity, "Loan created")
	return nil
}

// SaveLoan replaces the stored loan when it is still at prev.Version.
func (s *Store) SaveLoan(_ context.Context, prev, next *models.Loan, release int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.loans[prev.Id]
	if !ok {
		return fmt.Errorf("loan %s: %w", prev.Id, storage.ErrNotFound)
	}
	if stored.Version != prev.Version {
		return fmt.Errorf("loan %s at version %d: %w", prev.Id, stored.Version, storage.ErrLoanModified)
	}

	if err := s.release(next, release, "Loan "+string(next.Status)); err != nil {
		return err
	}
	s.loans[next.Id] = *next
	return nil
}

// DeleteLoan removes the loan when it is still at loan.Version.
func (s *Store) DeleteLoan(_ context.Context, loan *models.Loan, release int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.loans[loan.Id]
	if !ok {
		return fmt.Errorf("loan %s: %w", loan.Id, storage.ErrNotFound)
	}
	if stored.Version != loan.Version {
		return fmt.Errorf("loan %s at version %d: %w", loan.Id, stored.Version, storage.ErrLoanModified)
	}

	if err := s.release(loan, release, "Loan deleted"); err != nil {
		return err
	}
	delete(s.loans, loan.Id)
	delete(s.refs, loan.RefNbr)
	return nil
}

// release credits copies back to the loan's book. Callers hold the lock.
func (s *Store) release(loan *models.Loan, quantity int64, description string) error {
	if quantity <= 0 {
		return nil
	}
	book, ok := s.books[loan.BookId]
	if !ok {
		return fmt.Errorf("book %s: %w", loan.BookId, storage.ErrNotFound)
	}

	released, credited, err := inventory.Release(book, quantity)
	if err != nil {
		return err
	}
	released.UpdatedAt = s.now()
	s.books[book.Id] = released
	if credited > 0 {
		s.appendLedger(loan, models.RELEASE, credited, description)
	}
	return nil
}

func (s *Store) filterLoans(keep func(models.Loan) bool) []models.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Loan
	for _, l := range s.loans {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
