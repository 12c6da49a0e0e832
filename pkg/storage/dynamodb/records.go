package dynamodb

import (
	"fmt"
	"time"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	ledgerPartition  = "LEDGER_ENTRIES"
	lateFeeSetting   = "late_fees"
	connectionsPK    = "connections"
	borrowerIDIndex  = "borrower_id-index"
	statusIndex      = "status-index"
	ledgerGSI        = "gsi1pk-timestamp-index"
	connectionsIndex = "pk-index"
)

// loanRecord is the stored form of a loan. Money is kept as a decimal string so no precision is lost.
type loanRecord struct {
	Id                 string            `dynamodbav:"id"`
	RefNbr             string            `dynamodbav:"ref_nbr"`
	BookId             string            `dynamodbav:"book_id"`
	BorrowerId         string            `dynamodbav:"borrower_id"`
	Quantity           int64             `dynamodbav:"quantity"`
	Status             models.LoanStatus `dynamodbav:"status"`
	IsLost             bool              `dynamodbav:"is_lost"`
	DateBorrowed       time.Time         `dynamodbav:"date_borrowed"`
	ExpectedReturnDate time.Time         `dynamodbav:"expected_return_date"`
	DateReturned       *time.Time        `dynamodbav:"date_returned,omitempty"`
	DateCanceled       *time.Time        `dynamodbav:"date_canceled,omitempty"`
	Fees               *string           `dynamodbav:"fees,omitempty"`
	Version            int64             `dynamodbav:"version"`
	CreatedAt          time.Time         `dynamodbav:"created_at"`
	UpdatedAt          time.Time         `dynamodbav:"updated_at"`
}

func toLoanRecord(l *models.Loan) loanRecord {
	r := loanRecord{
		Id:                 l.Id,
		RefNbr:             l.RefNbr,
		BookId:             l.BookId,
		BorrowerId:         l.BorrowerId,
		Quantity:           l.Quantity,
		Status:             l.Status,
		IsLost:             l.IsLost,
		DateBorrowed:       l.DateBorrowed,
		ExpectedReturnDate: l.ExpectedReturnDate,
		DateReturned:       l.DateReturned,
		DateCanceled:       l.DateCanceled,
		Version:            l.Version,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	if l.Fees != nil {
		s := l.Fees.String()
		r.Fees = &s
	}
	return r
}

func (r loanRecord) toModel() (models.Loan, error) {
	l := models.Loan{
		Id:                 r.Id,
		RefNbr:             r.RefNbr,
		BookId:             r.BookId,
		BorrowerId:         r.BorrowerId,
		Quantity:           r.Quantity,
		Status:             r.Status,
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

func toLoans(records []loanRecord) ([]models.Loan, error) {
	out := make([]models.Loan, 0, len(records))
	for _, r := range records {
		l, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// refRecord guards uniqueness of a reference number.
type refRecord struct {
	RefNbr string `dynamodbav:"ref_nbr"`
	LoanID string `dynamodbav:"loan_id"`
}

// lateFeeRecord is the stored form of the late fee configuration.
type lateFeeRecord struct {
	Key      string `dynamodbav:"setting_key"`
	Enabled  bool   `dynamodbav:"enabled"`
	Rate     string `dynamodbav:"rate"`
	Interval string `dynamodbav:"interval"`
}

func (r lateFeeRecord) toConfig() (fees.Config, error) {
	rate, err := decimal.NewFromString(r.Rate)
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to parse late fee rate: %w", err)
	}
	return fees.Config{Enabled: r.Enabled, Rate: rate, Interval: r.Interval}, nil
}
