package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/library-lending/pkg/inventory"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type loanRow struct {
	Id                 string     `db:"id"`
	RefNbr             string     `db:"ref_nbr"`
	BookId             string     `db:"book_id"`
	BorrowerId         string     `db:"borrower_id"`
	Quantity           int64      `db:"quantity"`
	Status             string     `db:"status"`
	IsLost             bool       `db:"is_lost"`
	DateBorrowed       time.Time  `db:"date_borrowed"`
	ExpectedReturnDate time.Time  `db:"expected_return_date"`
	DateReturned       *time.Time `db:"date_returned"`
	DateCanceled       *time.Time `db:"date_canceled"`
	Fees               *string    `db:"fees"`
	Version            int64      `db:"version"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r loanRow) toModel() (models.Loan, error) {
	l := models.Loan{
		Id:                 r.Id,
		RefNbr:             r.RefNbr,
		BookId:             r.BookId,
		BorrowerId:         r.BorrowerId,
		Quantity:           r.Quantity,
		Status:             models.LoanStatus(r.Status),
		IsLost:             r.IsLost,
		DateBorrowed:       r.DateBorrowed,
		ExpectedReturnDate: r.ExpectedReturnDate,
		DateReturned:       r.DateReturned,
		DateCanceled:       r.DateCanceled,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if r.Fees != nil {
		fee, err := decimal.NewFromString(*r.Fees)
		if err != nil {
			return models.Loan{}, fmt.Errorf("failed to parse fees of loan %s: %w", r.Id, err)
		}
		l.Fees = &fee
	}
	return l, nil
}

// GetLoan retrieves a loan by its ID.
func (s *Store) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	return s.getLoan(ctx, s.db, loanID)
}

func (s *Store) getLoan(ctx context.Context, q querier, loanID string) (*models.Loan, error) {
	sql, args, err := selectLoanQuery(loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[loanRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("loan with ID %s: %w", loanID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read loan: %w", err)
	}

	loan, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListLoansByBorrower retrieves all loans of a borrower, newest first.
func (s *Store) ListLoansByBorrower(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	return s.listLoans(ctx, goqu.Ex{"borrower_id": borrowerID})
}

// ListLoansByStatus retrieves all loans in the given status, newest first.
func (s *Store) ListLoansByStatus(ctx context.Context, status models.LoanStatus) ([]models.Loan, error) {
	return s.listLoans(ctx, goqu.Ex{colStatus: string(status)})
}

func (s *Store) listLoans(ctx context.Context, where goqu.Ex) ([]models.Loan, error) {
	sql, args, err := listLoansQuery(where)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[loanRow])
	if err != nil {
		return nil, fmt.Errorf("failed to read loans: %w", err)
	}

	loans := make([]models.Loan, 0, len(list))
	for _, r := range list {
		l, err := r.toModel()
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, nil
}

// RefNumberExists reports whether any loan uses refNbr.
func (s *Store) RefNumberExists(ctx context.Context, refNbr string) (bool, error) {
	sql, args, err := refExistsQuery(refNbr)
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	var one int
	err = s.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up reference number: %w", err)
	}
	return true, nil
}

// CreateLoan locks the book, reserves the copies and inserts the loan in one transaction.
func (s *Store) CreateLoan(ctx context.Context, loan *models.Loan) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		book, err := s.getBook(ctx, tx, loan.BookId, true)
		if err != nil {
			return err
		}

		reserved, err := inventory.Reserve(*book, loan.Quantity)
		if err != nil {
			return err
		}
		reserved.UpdatedAt = loan.CreatedAt

		if _, err := exec(ctx, tx, func() (string, []any, error) { return updateBookCopiesQuery(reserved) }); err != nil {
			if isCheckViolation(err) {
				return fmt.Errorf("book %s: %w", book.Id, storage.ErrInsufficientCopies)
			}
			return fmt.Errorf("failed to reserve copies: %w", err)
		}

		_, err = exec(ctx, tx, func() (string, []any, error) { return insertLoanQuery(loan) })
		switch {
		case isUniqueViolation(err, refNbrConstraint):
			return fmt.Errorf("%s: %w", loan.RefNbr, storage.ErrReferenceCollision)
		case isUniqueViolation(err, ""):
			return fmt.Errorf("loan with ID %s: %w", loan.Id, storage.ErrAlreadyExists)
		case err != nil:
			return fmt.Errorf("failed to insert loan: %w", err)
		}

		return s.appendLedger(ctx, tx, loan, models.RESERVE, loan.Quantity, "Loan created", loan.CreatedAt)
	})
}

// SaveLoan updates the loan if it is still at prev.Version, releasing copies in the same transaction.
func (s *Store) SaveLoan(ctx context.Context, prev, next *models.Loan, release int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		affected, err := exec(ctx, tx, func() (string, []any, error) { return updateLoanQuery(next, prev.Version) })
		if err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}
		if affected == 0 {
			return s.missingOrModified(ctx, tx, prev.Id)
		}

		return s.release(ctx, tx, next, release, "Loan "+string(next.Status), next.UpdatedAt)
	})
}

// DeleteLoan removes the loan if it is still at loan.Version, releasing copies in the same transaction.
func (s *Store) DeleteLoan(ctx context.Context, loan *models.Loan, release int64) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		affected, err := exec(ctx, tx, func() (string, []any, error) { return deleteLoanQuery(loan.Id, loan.Version) })
		if err != nil {
			return fmt.Errorf("failed to delete loan: %w", err)
		}
		if affected == 0 {
			return s.missingOrModified(ctx, tx, loan.Id)
		}

		return s.release(ctx, tx, loan, release, "Loan deleted", s.now())
	})
}

func (s *Store) missingOrModified(ctx context.Context, q querier, loanID string) error {
	if _, err := s.getLoan(ctx, q, loanID); err != nil {
		return err
	}
	return fmt.Errorf("loan with ID %s: %w", loanID, storage.ErrLoanModified)
}

// release locks the loan's book and credits up to quantity copies back.
func (s *Store) release(ctx context.Context, tx pgx.Tx, loan *models.Loan, quantity int64, description string, now time.Time) error {
	if quantity <= 0 {
		return nil
	}

	book, err := s.getBook(ctx, tx, loan.BookId, true)
	if err != nil {
		return err
	}

	released, credited, err := inventory.Release(*book, quantity)
	if err != nil {
		return err
	}
	if credited == 0 {
		return nil
	}
	released.UpdatedAt = now

	if _, err := exec(ctx, tx, func() (string, []any, error) { return updateBookCopiesQuery(released) }); err != nil {
		return fmt.Errorf("failed to release copies: %w", err)
	}

	return s.appendLedger(ctx, tx, loan, models.RELEASE, credited, description, now)
}

func (s *Store) appendLedger(ctx context.Context, tx pgx.Tx, loan *models.Loan, movement models.Movement, quantity int64, description string, now time.Time) error {
	entry := models.LedgerEntry{
		EntryID:     uuid.New().String(),
		LoanID:      loan.Id,
		RefNbr:      loan.RefNbr,
		BookID:      loan.BookId,
		Movement:    movement,
		Quantity:    quantity,
		Description: description,
		Timestamp:   now,
	}
	if _, err := exec(ctx, tx, func() (string, []any, error) { return insertLedgerQuery(entry) }); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}
