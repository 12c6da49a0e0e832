package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus defines the possible states of a loan.
type LoanStatus string

const (
	BORROWED LoanStatus = "borrowed"
	RETURNED LoanStatus = "returned"
	OVERDUE  LoanStatus = "overdue"
	CANCELED LoanStatus = "canceled"
)

// Valid reports whether s is one of the known loan states.
func (s LoanStatus) Valid() bool {
	switch s {
	case BORROWED, RETURNED, OVERDUE, CANCELED:
		return true
	}
	return false
}

// Open reports whether a loan in this state still holds its reserved copies.
func (s LoanStatus) Open() bool {
	return s == BORROWED || s == OVERDUE
}

// Book is the part of a catalog entry the lending engine reads and mutates.
// AvailableCopies is only ever changed through the inventory ledger.
type Book struct {
	Id              string    `json:"id" dynamodbav:"id"`
	Title           string    `json:"title" dynamodbav:"title"`
	Author          string    `json:"author" dynamodbav:"author"`
	TotalCopies     int64     `json:"total_copies" dynamodbav:"total_copies"`
	AvailableCopies int64     `json:"available_copies" dynamodbav:"available_copies"`
	Version         int64     `json:"version" dynamodbav:"version"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Loan represents the internal domain model for a lending transaction.
// Fees is nil unless an operator entered a manual amount.
type Loan struct {
	Id                 string           `json:"id"`
	RefNbr             string           `json:"ref_nbr"`
	BookId             string           `json:"book_id"`
	BorrowerId         string           `json:"borrower_id"`
	Quantity           int64            `json:"quantity"`
	Status             LoanStatus       `json:"status"`
	IsLost             bool             `json:"is_lost"`
	DateBorrowed       time.Time        `json:"date_borrowed"`
	ExpectedReturnDate time.Time        `json:"expected_return_date"`
	DateReturned       *time.Time       `json:"date_returned,omitempty"`
	DateCanceled       *time.Time       `json:"date_canceled,omitempty"`
	Fees               *decimal.Decimal `json:"fees,omitempty"`
	Version            int64            `json:"version"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Borrower is a user directory entry. The lending engine only checks existence.
type Borrower struct {
	Id        string    `json:"id" dynamodbav:"id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Email     string    `json:"email" dynamodbav:"email"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Movement is the direction of an inventory ledger entry.
type Movement string

const (
	RESERVE Movement = "reserve"
	RELEASE Movement = "release"
)

// LedgerEntry records a single reserve or release of copies for a loan.
type LedgerEntry struct {
	EntryID     string    `dynamodbav:"entry_id"`
	LoanID      string    `dynamodbav:"loan_id"`
	RefNbr      string    `dynamodbav:"ref_nbr"`
	BookID      string    `dynamodbav:"book_id"`
	Movement    Movement  `dynamodbav:"movement"`
	Quantity    int64     `dynamodbav:"quantity"`
	Description string    `dynamodbav:"description"`
	Timestamp   time.Time `dynamodbav:"timestamp"`
	GSI1PK      string    `dynamodbav:"gsi1pk"`
}
