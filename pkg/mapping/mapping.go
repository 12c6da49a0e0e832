package mapping

import (
	"time"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/loans"
	"github.com/chris/library-lending/pkg/models"
)

// ToApiLoan converts a loan view to the API Loan model.
func ToApiLoan(v *lending.LoanView) *api.Loan {
	return &api.Loan{
		Id:                 v.Id,
		RefNbr:             v.RefNbr,
		BookId:             v.BookId,
		BorrowerId:         v.BorrowerId,
		Quantity:           v.Quantity,
		Status:             api.LoanStatus(v.Status),
		DisplayStatus:      api.LoanStatus(v.DisplayStatus),
		IsLost:             v.IsLost,
		DateBorrowed:       v.DateBorrowed,
		ExpectedReturnDate: v.ExpectedReturnDate,
		DateReturned:       v.DateReturned,
		DateCanceled:       v.DateCanceled,
		Fees:               v.Fees,
		CalculatedFees:     v.CalculatedFees,
		AmountDue:          v.AmountDue,
		Version:            v.Version,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ToApiLoans converts a list of loan views.
func ToApiLoans(views []lending.LoanView) []*api.Loan {
	out := make([]*api.Loan, len(views))
	for i := range views {
		out[i] = ToApiLoan(&views[i])
	}
	return out
}

// ToDomainNewLoan converts an API NewLoan into a lending request. Quantity defaults to one copy.
func ToDomainNewLoan(n *api.NewLoan) lending.NewLoan {
	req := lending.NewLoan{
		BookID:             n.BookId,
		BorrowerID:         n.BorrowerId,
		Quantity:           1,
		ExpectedReturnDate: n.ExpectedReturnDate.UTC(),
		DateBorrowed:       utc(n.DateBorrowed),
		Fees:               n.Fees,
	}
	if n.Quantity != nil {
		req.Quantity = *n.Quantity
	}
	return req
}

// ToDomainLoanUpdate converts an API LoanUpdate into the state machine's edit set.
func ToDomainLoanUpdate(u *api.LoanUpdate) loans.Update {
	out := loans.Update{
		IsLost:             u.IsLost,
		Fees:               u.Fees,
		DateBorrowed:       utc(u.DateBorrowed),
		ExpectedReturnDate: utc(u.ExpectedReturnDate),
		DateReturned:       utc(u.DateReturned),
	}
	if u.Status != nil {
		s := models.LoanStatus(*u.Status)
		out.Status = &s
	}
	if u.ForceOverdue != nil {
		out.ForceOverdue = *u.ForceOverdue
	}
	if u.ClearFees != nil {
		out.ClearFees = *u.ClearFees
	}
	return out
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// ToApiBook converts a domain Book model to an API Book model.
func ToApiBook(b *models.Book) *api.Book {
	return &api.Book{
		Id:              b.Id,
		Title:           b.Title,
		Author:          b.Author,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToDomainNewBook converts an API NewBook model to a domain Book model.
func ToDomainNewBook(n *api.NewBook) *models.Book {
	b := &models.Book{Title: n.Title, TotalCopies: n.TotalCopies}
	if n.Id != nil {
		b.Id = *n.Id
	}
	if n.Author != nil {
		b.Author = *n.Author
	}
	return b
}

// ToApiBorrower converts a domain Borrower model to an API Borrower model.
func ToApiBorrower(b *models.Borrower) *api.Borrower {
	return &api.Borrower{
		Id:        b.Id,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}

// ToDomainNewBorrower converts an API NewBorrower model to a domain Borrower model.
func ToDomainNewBorrower(n *api.NewBorrower) *models.Borrower {
	b := &models.Borrower{Name: n.Name}
	if n.Id != nil {
		b.Id = *n.Id
	}
	if n.Email != nil {
		b.Email = *n.Email
	}
	return b
}

// ToApiLedgerEntry converts a domain ledger entry to the API model.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	movement := api.LedgerEntryMovement(entry.Movement)
	return &api.LedgerEntry{
		EntryId:     &entry.EntryID,
		LoanId:      &entry.LoanID,
		RefNbr:      &entry.RefNbr,
		BookId:      &entry.BookID,
		Movement:    &movement,
		Quantity:    &entry.Quantity,
		Description: &entry.Description,
		Timestamp:   &entry.Timestamp,
	}
}

// ToApiLateFeeConfig converts the fee configuration to the API model.
func ToApiLateFeeConfig(cfg fees.Config) *api.LateFeeConfig {
	return &api.LateFeeConfig{Enabled: cfg.Enabled, Rate: cfg.Rate, Interval: cfg.Interval}
}

// ToDomainLateFeeConfig converts the API model to a fee configuration.
func ToDomainLateFeeConfig(cfg *api.LateFeeConfig) fees.Config {
	return fees.Config{Enabled: cfg.Enabled, Rate: cfg.Rate, Interval: cfg.Interval}
}
