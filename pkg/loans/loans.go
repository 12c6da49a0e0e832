// Package loans is the loan state machine. A loan's state is the pair (Status, IsLost):
// Status moves along the transition table below, IsLost is an orthogonal flag that only
// decides whether closing the loan puts its copies back on the shelf.
//
//	borrowed -> returned | canceled | overdue
//	overdue  -> returned | canceled
//	returned, canceled: terminal
package loans

import (
	"errors"
	"fmt"
	"time"

	"github.com/chris/library-lending/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTransition is returned when a status change is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidDates is returned when date edits would break the loan's date ordering.
	ErrInvalidDates = errors.New("invalid loan dates")

	// ErrInvalidFees is returned for a negative manual fee or one finer than cents.
	ErrInvalidFees = errors.New("fees must be a non-negative amount with at most two decimal places")
)

// FeeScale is the number of decimal places a stored fee may carry.
const FeeScale = 2

var transitions = map[models.LoanStatus][]models.LoanStatus{
	models.BORROWED: {models.RETURNED, models.CANCELED, models.OVERDUE},
	models.OVERDUE:  {models.RETURNED, models.CANCELED},
}

// TransitionError describes a rejected status change.
type TransitionError struct {
	From   models.LoanStatus
	To     models.LoanStatus
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CanTransition reports whether the table allows moving from one status to another.
func CanTransition(from, to models.LoanStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Update is a set of requested edits. Nil fields are left untouched.
type Update struct {
	Status *models.LoanStatus
	// ForceOverdue lets an operator mark a loan overdue before its expected return date.
	ForceOverdue       bool
	IsLost             *bool
	Fees               *decimal.Decimal
	ClearFees          bool
	DateBorrowed       *time.Time
	ExpectedReturnDate *time.Time
	DateReturned       *time.Time
}

// Change is the outcome of applying an Update.
type Change struct {
	Next models.Loan
	// Release is the number of copies the store must put back on the shelf with this write.
	Release int64
}

// Apply validates u against the current loan and returns the loan to persist.
// The current loan is never modified; on error nothing should be written.
func Apply(current models.Loan, u Update, now time.Time) (Change, error) {
	next := current
	target := current.Status
	if u.Status != nil {
		target = *u.Status
	}

	if !target.Valid() {
		return Change{}, &TransitionError{From: current.Status, To: target, Reason: "unknown status"}
	}

	if u.IsLost != nil {
		next.IsLost = *u.IsLost
	}

	if u.ClearFees {
		next.Fees = nil
	} else if u.Fees != nil {
		if err := ValidateFee(*u.Fees); err != nil {
			return Change{}, err
		}
		fee := *u.Fees
		next.Fees = &fee
	}

	if u.DateBorrowed != nil {
		next.DateBorrowed = *u.DateBorrowed
	}
	if u.ExpectedReturnDate != nil {
		next.ExpectedReturnDate = *u.ExpectedReturnDate
	}
	if u.DateReturned != nil {
		if target != models.RETURNED {
			return Change{}, fmt.Errorf("%w: date_returned requires status %s", ErrInvalidDates, models.RETURNED)
		}
		returned := *u.DateReturned
		next.DateReturned = &returned
	}

	var change Change
	if target != current.Status {
		if !CanTransition(current.Status, target) {
			return Change{}, &TransitionError{From: current.Status, To: target}
		}

		switch target {
		case models.OVERDUE:
			if !u.ForceOverdue && !now.After(next.ExpectedReturnDate) {
				return Change{}, &TransitionError{From: current.Status, To: target, Reason: "loan is not past its expected return date"}
			}
		case models.RETURNED:
			if next.DateReturned == nil {
				returned := now
				next.DateReturned = &returned
			}
		case models.CANCELED:
			canceled := now
			next.DateCanceled = &canceled
		}

		next.Status = target
		if current.Status.Open() && !target.Open() && !next.IsLost {
			change.Release = current.Quantity
		}
	}

	if err := ValidateDates(next); err != nil {
		return Change{}, err
	}

	next.Version = current.Version + 1
	next.UpdatedAt = now
	change.Next = next
	return change, nil
}

// ValidateDates checks expected_return_date >= date_borrowed and date_returned >= date_borrowed.
func ValidateDates(l models.Loan) error {
	if l.ExpectedReturnDate.Before(l.DateBorrowed) {
		return fmt.Errorf("%w: expected return date is before the borrow date", ErrInvalidDates)
	}
	if l.DateReturned != nil && l.DateReturned.Before(l.DateBorrowed) {
		return fmt.Errorf("%w: return date is before the borrow date", ErrInvalidDates)
	}
	return nil
}

// ValidateFee rejects negative amounts and amounts that would be rounded when stored.
func ValidateFee(fee decimal.Decimal) error {
	if fee.IsNegative() || !fee.Equal(fee.Round(FeeScale)) {
		return ErrInvalidFees
	}
	return nil
}

// ReleaseOnDelete returns how many copies deleting the loan must put back on the shelf.
// Closed loans already released theirs, lost copies never come back.
func ReleaseOnDelete(l models.Loan) int64 {
	if l.Status.Open() && !l.IsLost {
		return l.Quantity
	}
	return 0
}

// DisplayStatus derives overdue for borrowed loans observed past their expected return date.
func DisplayStatus(l models.Loan, now time.Time) models.LoanStatus {
	if l.Status == models.BORROWED && now.After(l.ExpectedReturnDate) {
		return models.OVERDUE
	}
	return l.Status
}

// FeeEnd returns the instant late fees stop accruing: the return or cancel date of a closed loan,
// or now for an open one.
func FeeEnd(l models.Loan, now time.Time) time.Time {
	switch {
	case l.Status == models.RETURNED && l.DateReturned != nil:
		return *l.DateReturned
	case l.Status == models.CANCELED && l.DateCanceled != nil:
		return *l.DateCanceled
	}
	return now
}
