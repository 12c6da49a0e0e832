package loans

import (
	"testing"
	"time"

	"github.com/chris/library-lending/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	borrowedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	dueAt      = borrowedAt.Add(14 * 24 * time.Hour)
)

func openLoan() models.Loan {
	return models.Loan{
		Id:                 "loan-1",
		RefNbr:             "CTU-ABC123",
		BookId:             "book-1",
		BorrowerId:         "reader-1",
		Quantity:           2,
		Status:             models.BORROWED,
		DateBorrowed:       borrowedAt,
		ExpectedReturnDate: dueAt,
		Version:            3,
	}
}

func status(s models.LoanStatus) *models.LoanStatus { return &s }

func TestTransitionTable(t *testing.T) {
	all := []models.LoanStatus{models.BORROWED, models.RETURNED, models.OVERDUE, models.CANCELED}
	allowed := map[[2]models.LoanStatus]bool{
		{models.BORROWED, models.RETURNED}: true,
		{models.BORROWED, models.CANCELED}: true,
		{models.BORROWED, models.OVERDUE}:  true,
		{models.OVERDUE, models.RETURNED}:  true,
		{models.OVERDUE, models.CANCELED}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]models.LoanStatus{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestApplyReturn(t *testing.T) {
	now := dueAt.Add(-time.Hour)

	t.Run("Releases Quantity", func(t *testing.T) {
		change, err := Apply(openLoan(), Update{Status: status(models.RETURNED)}, now)

		require.NoError(t, err)
		assert.Equal(t, int64(2), change.Release)
		assert.Equal(t, models.RETURNED, change.Next.Status)
		require.NotNil(t, change.Next.DateReturned)
		assert.Equal(t, now, *change.Next.DateReturned)
		assert.Equal(t, int64(4), change.Next.Version)
	})

	t.Run("Explicit Return Date", func(t *testing.T) {
		returned := borrowedAt.Add(48 * time.Hour)

		change, err := Apply(openLoan(), Update{Status: status(models.RETURNED), DateReturned: &returned}, now)

		require.NoError(t, err)
		assert.Equal(t, returned, *change.Next.DateReturned)
	})

	t.Run("Lost Copy Is Not Released", func(t *testing.T) {
		loan := openLoan()
		loan.IsLost = true

		change, err := Apply(loan, Update{Status: status(models.RETURNED)}, now)

		require.NoError(t, err)
		assert.Zero(t, change.Release)
		assert.Equal(t, models.RETURNED, change.Next.Status)
	})

	t.Run("Lost In Same Update", func(t *testing.T) {
		lost := true

		change, err := Apply(openLoan(), Update{Status: status(models.RETURNED), IsLost: &lost}, now)

		require.NoError(t, err)
		assert.Zero(t, change.Release)
		assert.True(t, change.Next.IsLost)
	})

	t.Run("From Overdue", func(t *testing.T) {
		loan := openLoan()
		loan.Status = models.OVERDUE

		change, err := Apply(loan, Update{Status: status(models.RETURNED)}, now)

		require.NoError(t, err)
		assert.Equal(t, int64(2), change.Release)
	})

	t.Run("Return Date Before Borrow Date", func(t *testing.T) {
		returned := borrowedAt.Add(-time.Hour)

		_, err := Apply(openLoan(), Update{Status: status(models.RETURNED), DateReturned: &returned}, now)

		assert.ErrorIs(t, err, ErrInvalidDates)
	})
}

func TestApplyCancel(t *testing.T) {
	now := borrowedAt.Add(time.Hour)

	change, err := Apply(openLoan(), Update{Status: status(models.CANCELED)}, now)

	require.NoError(t, err)
	assert.Equal(t, int64(2), change.Release)
	require.NotNil(t, change.Next.DateCanceled)
	assert.Equal(t, now, *change.Next.DateCanceled)
	assert.Nil(t, change.Next.DateReturned)
}

func TestApplyTerminalStates(t *testing.T) {
	for _, terminal := range []models.LoanStatus{models.RETURNED, models.CANCELED} {
		loan := openLoan()
		loan.Status = terminal

		for _, to := range []models.LoanStatus{models.BORROWED, models.OVERDUE, models.RETURNED, models.CANCELED} {
			if to == terminal {
				continue
			}
			_, err := Apply(loan, Update{Status: status(to)}, dueAt)

			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, to)
			var te *TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, terminal, te.From)
			assert.Equal(t, "cannot change status from "+string(terminal)+" to "+string(to), te.Error())
		}
	}
}

func TestApplyBookkeepingOnClosedLoan(t *testing.T) {
	loan := openLoan()
	loan.Status = models.RETURNED
	returned := dueAt.Add(24 * time.Hour)
	loan.DateReturned = &returned
	fee := decimal.NewFromInt(7)
	lost := true

	change, err := Apply(loan, Update{Status: status(models.RETURNED), Fees: &fee, IsLost: &lost}, dueAt.Add(72*time.Hour))

	require.NoError(t, err)
	assert.Zero(t, change.Release)
	assert.Equal(t, models.RETURNED, change.Next.Status)
	assert.True(t, change.Next.IsLost)
	require.NotNil(t, change.Next.Fees)
	assert.True(t, fee.Equal(*change.Next.Fees))
	assert.Equal(t, returned, *change.Next.DateReturned)
}

func TestApplyOverdue(t *testing.T) {
	t.Run("Past Due", func(t *testing.T) {
		change, err := Apply(openLoan(), Update{Status: status(models.OVERDUE)}, dueAt.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, models.OVERDUE, change.Next.Status)
		assert.Zero(t, change.Release)
	})

	t.Run("Not Yet Due", func(t *testing.T) {
		_, err := Apply(openLoan(), Update{Status: status(models.OVERDUE)}, dueAt.Add(-time.Minute))

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Operator Override", func(t *testing.T) {
		change, err := Apply(openLoan(), Update{Status: status(models.OVERDUE), ForceOverdue: true}, dueAt.Add(-time.Minute))

		require.NoError(t, err)
		assert.Equal(t, models.OVERDUE, change.Next.Status)
	})

	t.Run("Back To Borrowed", func(t *testing.T) {
		loan := openLoan()
		loan.Status = models.OVERDUE

		_, err := Apply(loan, Update{Status: status(models.BORROWED)}, dueAt)

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestApplyFields(t *testing.T) {
	now := borrowedAt.Add(time.Hour)

	t.Run("Clear Fees", func(t *testing.T) {
		loan := openLoan()
		fee := decimal.NewFromInt(3)
		loan.Fees = &fee

		change, err := Apply(loan, Update{ClearFees: true}, now)

		require.NoError(t, err)
		assert.Nil(t, change.Next.Fees)
		assert.NotNil(t, loan.Fees)
	})

	t.Run("Negative Fees", func(t *testing.T) {
		fee := decimal.NewFromInt(-1)

		_, err := Apply(openLoan(), Update{Fees: &fee}, now)

		assert.ErrorIs(t, err, ErrInvalidFees)
	})

	t.Run("Sub Cent Fees", func(t *testing.T) {
		fee := decimal.RequireFromString("1.005")

		_, err := Apply(openLoan(), Update{Fees: &fee}, now)

		assert.ErrorIs(t, err, ErrInvalidFees)
	})

	t.Run("Trailing Zeros Are Whole Cents", func(t *testing.T) {
		fee := decimal.RequireFromString("1.5000")

		change, err := Apply(openLoan(), Update{Fees: &fee}, now)

		require.NoError(t, err)
		assert.True(t, change.Next.Fees.Equal(decimal.RequireFromString("1.50")))
	})

	t.Run("Expected Before Borrowed", func(t *testing.T) {
		expected := borrowedAt.Add(-24 * time.Hour)

		_, err := Apply(openLoan(), Update{ExpectedReturnDate: &expected}, now)

		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("Return Date Without Return", func(t *testing.T) {
		returned := now

		_, err := Apply(openLoan(), Update{DateReturned: &returned}, now)

		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, err := Apply(openLoan(), Update{Status: status("misplaced")}, now)

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReleaseOnDelete(t *testing.T) {
	loan := openLoan()
	assert.Equal(t, int64(2), ReleaseOnDelete(loan))

	loan.IsLost = true
	assert.Zero(t, ReleaseOnDelete(loan))

	loan.IsLost = false
	loan.Status = models.CANCELED
	assert.Zero(t, ReleaseOnDelete(loan))
}

func TestDisplayStatusAndFeeEnd(t *testing.T) {
	loan := openLoan()
	now := dueAt.Add(time.Hour)

	assert.Equal(t, models.OVERDUE, DisplayStatus(loan, now))
	assert.Equal(t, models.BORROWED, DisplayStatus(loan, dueAt))
	assert.Equal(t, now, FeeEnd(loan, now))

	returned := dueAt.Add(-time.Hour)
	loan.Status = models.RETURNED
	loan.DateReturned = &returned
	assert.Equal(t, models.RETURNED, DisplayStatus(loan, now))
	assert.Equal(t, returned, FeeEnd(loan, now))
}
