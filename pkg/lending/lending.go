// Package lending is the entry point of the lending engine. It composes the inventory ledger,
// the loan state machine, the fee policy and the reference allocator into the create, update and
// delete use cases. Handlers and lambdas talk to this package only.
package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/loans"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/refnbr"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxReferenceAttempts = 3

// ErrInvalidLoan is returned when a loan request fails validation.
var ErrInvalidLoan = errors.New("invalid loan request")

// Store is the data access the lending service needs.
type Store interface {
	storage.LoanStore
	storage.BookStore
	storage.BorrowerStore
}

// NewLoan is a request to lend copies of a book.
type NewLoan struct {
	BookID             string
	BorrowerID         string
	Quantity           int64
	DateBorrowed       *time.Time
	ExpectedReturnDate time.Time
	Fees               *decimal.Decimal
}

// LoanView is a loan as presented to callers, with the derived fee fields filled in.
type LoanView struct {
	models.Loan
	DisplayStatus  models.LoanStatus
	CalculatedFees decimal.Decimal
	AmountDue      decimal.Decimal
}

// Service implements the lending use cases.
type Service struct {
	Store  Store
	Fees   fees.Provider
	Refs   *refnbr.Allocator
	Logger *slog.Logger
	Now    func() time.Time

	retry retryPolicy
}

// NewService creates a Service with the default clock, logger and retry policy.
func NewService(store Store, feeProvider fees.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Store:  store,
		Fees:   feeProvider,
		Refs:   refnbr.NewAllocator(store),
		Logger: logger,
		Now:    time.Now,
		retry:  defaultRetryPolicy(),
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// CreateLoan reserves copies and records a new borrowed loan.
func (s *Service) CreateLoan(ctx context.Context, req NewLoan) (*LoanView, error) {
	now := s.now()

	if req.BookID == "" || req.BorrowerID == "" {
		return nil, fmt.Errorf("%w: book_id and borrower_id are required", ErrInvalidLoan)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidLoan)
	}
	if req.Fees != nil {
		if err := loans.ValidateFee(*req.Fees); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLoan, err)
		}
	}

	borrowed := now
	if req.DateBorrowed != nil {
		borrowed = *req.DateBorrowed
	}

	if _, err := s.Store.GetBorrower(ctx, req.BorrowerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: borrower %s does not exist", ErrInvalidLoan, req.BorrowerID)
		}
		return nil, fmt.Errorf("failed to look up borrower: %w", err)
	}

	loan := &models.Loan{
		Id:                 uuid.New().String(),
		BookId:             req.BookID,
		BorrowerId:         req.BorrowerID,
		Quantity:           req.Quantity,
		Status:             models.BORROWED,
		DateBorrowed:       borrowed,
		ExpectedReturnDate: req.ExpectedReturnDate,
		Fees:               req.Fees,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := loans.ValidateDates(*loan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoan, err)
	}

	var err error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		loan.RefNbr, err = s.Refs.Allocate(ctx)
		if err != nil {
			if errors.Is(err, refnbr.ErrExhausted) {
				return nil, fmt.Errorf("%w: %v", storage.ErrReferenceCollision, err)
			}
			return nil, err
		}

		err = s.Store.CreateLoan(ctx, loan)
		if !errors.Is(err, storage.ErrReferenceCollision) {
			break
		}
		s.logger().Warn("reference number taken at write time, allocating another", "ref_nbr", loan.RefNbr)
	}
	if err != nil {
		return nil, err
	}

	s.logger().Info("loan created",
		"loan_id", loan.Id,
		"ref_nbr", loan.RefNbr,
		"book_id", loan.BookId,
		"quantity", loan.Quantity,
	)

	return s.view(ctx, *loan)
}

// GetLoan retrieves a loan with its late fee computed against the current configuration.
func (s *Service) GetLoan(ctx context.Context, loanID string) (*LoanView, error) {
	loan, err := s.Store.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *loan)
}

// ListLoansByBorrower retrieves every loan of a borrower.
func (s *Service) ListLoansByBorrower(ctx context.Context, borrowerID string) ([]LoanView, error) {
	list, err := s.Store.ListLoansByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list)
}

// ListOpenLoans retrieves all borrowed and overdue loans.
func (s *Service) ListOpenLoans(ctx context.Context) ([]LoanView, error) {
	var open []models.Loan
	for _, status := range []models.LoanStatus{models.BORROWED, models.OVERDUE} {
		list, err := s.Store.ListLoansByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		open = append(open, list...)
	}
	return s.views(ctx, open)
}

// UpdateLoan applies status, lost flag, fee and date edits through the loan state machine.
// Closing a loan and releasing its copies are persisted together.
func (s *Service) UpdateLoan(ctx context.Context, loanID string, u loans.Update) (*LoanView, error) {
	var updated models.Loan

	err := retryWithBackoff(ctx, s.retry, func(ctx context.Context) error {
		current, err := s.Store.GetLoan(ctx, loanID)
		if err != nil {
			return err
		}

		change, err := loans.Apply(*current, u, s.now())
		if err != nil {
			return err
		}

		if err := s.Store.SaveLoan(ctx, current, &change.Next, change.Release); err != nil {
			return err
		}

		if current.Status != change.Next.Status {
			s.logger().Info("loan status changed",
				"loan_id", loanID,
				"from", current.Status,
				"to", change.Next.Status,
				"released", change.Release,
			)
		}
		updated = change.Next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.view(ctx, updated)
}

// DeleteLoan removes a loan, first putting its copies back when it was still open and not lost.
func (s *Service) DeleteLoan(ctx context.Context, loanID string) error {
	return retryWithBackoff(ctx, s.retry, func(ctx context.Context) error {
		current, err := s.Store.GetLoan(ctx, loanID)
		if err != nil {
			return err
		}

		release := loans.ReleaseOnDelete(*current)
		if err := s.Store.DeleteLoan(ctx, current, release); err != nil {
			return err
		}

		s.logger().Info("loan deleted", "loan_id", loanID, "released", release)
		return nil
	})
}

// MarkOverdueLoans persists the overdue status for borrowed loans past their expected return date.
// Loans that fail to update are logged and skipped.
func (s *Service) MarkOverdueLoans(ctx context.Context) ([]LoanView, error) {
	borrowed, err := s.Store.ListLoansByStatus(ctx, models.BORROWED)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrowed loans: %w", err)
	}

	overdue := models.OVERDUE
	now := s.now()
	var marked []LoanView
	for _, loan := range borrowed {
		if !now.After(loan.ExpectedReturnDate) {
			continue
		}

		view, err := s.UpdateLoan(ctx, loan.Id, loans.Update{Status: &overdue})
		if err != nil {
			s.logger().Error("failed to mark loan overdue", "loan_id", loan.Id, "error", err)
			continue
		}
		marked = append(marked, *view)
	}

	return marked, nil
}

func (s *Service) view(ctx context.Context, loan models.Loan) (*LoanView, error) {
	cfg, err := s.Fees.LateFeeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load late fee configuration: %w", err)
	}
	return viewWith(loan, cfg, s.now())
}

func (s *Service) views(ctx context.Context, list []models.Loan) ([]LoanView, error) {
	cfg, err := s.Fees.LateFeeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load late fee configuration: %w", err)
	}

	now := s.now()
	out := make([]LoanView, 0, len(list))
	for _, loan := range list {
		v, err := viewWith(loan, cfg, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func viewWith(loan models.Loan, cfg fees.Config, now time.Time) (*LoanView, error) {
	calculated, err := fees.Calculate(loan.ExpectedReturnDate, loans.FeeEnd(loan, now), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate late fee for loan %s: %w", loan.Id, err)
	}

	return &LoanView{
		Loan:           loan,
		DisplayStatus:  loans.DisplayStatus(loan, now),
		CalculatedFees: calculated,
		AmountDue:      fees.AmountDue(loan.Fees, calculated),
	}, nil
}
