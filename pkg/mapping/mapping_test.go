package mapping

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/loans"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHttpStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"Not Found", fmt.Errorf("loan with ID x: %w", storage.ErrNotFound), http.StatusNotFound},
		{"No Copies Left", fmt.Errorf("book b: %w", storage.ErrInsufficientCopies), http.StatusConflict},
		{"Invalid Transition", &loans.TransitionError{From: models.RETURNED, To: models.BORROWED}, http.StatusConflict},
		{"Modified", storage.ErrLoanModified, http.StatusConflict},
		{"Reference Collision", storage.ErrReferenceCollision, http.StatusServiceUnavailable},
		{"Invalid Loan", fmt.Errorf("%w: quantity", lending.ErrInvalidLoan), http.StatusUnprocessableEntity},
		{"Invalid Dates", loans.ErrInvalidDates, http.StatusUnprocessableEntity},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := ToHttpStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
		})
	}

	t.Run("No Copies Message", func(t *testing.T) {
		_, msg := ToHttpStatus(fmt.Errorf("book b: %w", storage.ErrInsufficientCopies))
		assert.Equal(t, "no copies left", msg)
	})
}

func TestToDomainNewLoan(t *testing.T) {
	due := time.Date(2025, 3, 15, 17, 0, 0, 0, time.UTC)

	t.Run("Defaults Quantity", func(t *testing.T) {
		req := ToDomainNewLoan(&api.NewLoan{BookId: "book-1", BorrowerId: "reader-1", ExpectedReturnDate: due})
		assert.Equal(t, int64(1), req.Quantity)
		assert.Nil(t, req.DateBorrowed)
		assert.Equal(t, due, req.ExpectedReturnDate)
	})

	t.Run("Keeps Explicit Values", func(t *testing.T) {
		qty := int64(3)
		borrowed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
		req := ToDomainNewLoan(&api.NewLoan{BookId: "book-1", BorrowerId: "reader-1", Quantity: &qty, DateBorrowed: &borrowed, ExpectedReturnDate: due})
		assert.Equal(t, int64(3), req.Quantity)
		require.NotNil(t, req.DateBorrowed)
		assert.Equal(t, borrowed, *req.DateBorrowed)
	})
}

func TestLoanDatesAreUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	due := time.Date(2025, 3, 15, 18, 0, 0, 0, berlin)
	returned := time.Date(2025, 3, 15, 12, 0, 0, 0, berlin)

	req := ToDomainNewLoan(&api.NewLoan{BookId: "book-1", BorrowerId: "reader-1", ExpectedReturnDate: due})
	assert.Equal(t, time.UTC, req.ExpectedReturnDate.Location())
	assert.True(t, req.ExpectedReturnDate.Equal(due))

	u := ToDomainLoanUpdate(&api.LoanUpdate{DateReturned: &returned})
	require.NotNil(t, u.DateReturned)
	assert.Equal(t, time.UTC, u.DateReturned.Location())
	assert.Equal(t, 11, u.DateReturned.Hour())
}

func TestToDomainLoanUpdate(t *testing.T) {
	status := api.Returned
	lost := true
	clearFees := true
	returned := time.Date(2025, 3, 20, 11, 0, 0, 0, time.UTC)

	u := ToDomainLoanUpdate(&api.LoanUpdate{Status: &status, IsLost: &lost, ClearFees: &clearFees, DateReturned: &returned})

	require.NotNil(t, u.Status)
	assert.Equal(t, models.RETURNED, *u.Status)
	assert.True(t, *u.IsLost)
	assert.True(t, u.ClearFees)
	assert.False(t, u.ForceOverdue)
	require.NotNil(t, u.DateReturned)
	assert.Equal(t, returned, *u.DateReturned)
	assert.Nil(t, u.ExpectedReturnDate)
}

func TestToApiLoan(t *testing.T) {
	returned := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	view := &lending.LoanView{
		Loan: models.Loan{
			Id:                 "loan-1",
			RefNbr:             "CTU-ABC123",
			Status:             models.RETURNED,
			DateBorrowed:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpectedReturnDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			DateReturned:       &returned,
		},
		DisplayStatus:  models.RETURNED,
		CalculatedFees: decimal.NewFromInt(50),
		AmountDue:      decimal.NewFromInt(50),
	}

	l := ToApiLoan(view)

	assert.Equal(t, api.Returned, l.Status)
	assert.Nil(t, l.Fees)
	assert.True(t, l.CalculatedFees.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, l.DateReturned)
	assert.Equal(t, returned, *l.DateReturned)
}
