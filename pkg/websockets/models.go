package websockets

import (
	"time"

	"github.com/shopspring/decimal"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeLoanUpdate is sent when a loan is created, changed or deleted.
	MessageTypeLoanUpdate MessageType = "loanUpdate"
	// MessageTypeLoanReminder is sent when an overdue loan's reminder comes due.
	MessageTypeLoanReminder MessageType = "loanReminder"
)

// LoanEvent names what happened to the loan in a loanUpdate message.
type LoanEvent string

const (
	LoanCreated LoanEvent = "created"
	LoanUpdated LoanEvent = "updated"
	LoanDeleted LoanEvent = "deleted"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// LoanUpdatePayload is the payload for a loanUpdate message.
type LoanUpdatePayload struct {
	Event           LoanEvent `json:"event"`
	LoanID          string    `json:"loan_id"`
	RefNbr          string    `json:"ref_nbr"`
	Status          string    `json:"status"`
	BookID          string    `json:"book_id"`
	AvailableCopies int64     `json:"available_copies"`
}

// LoanReminderPayload is the payload for a loanReminder message.
type LoanReminderPayload struct {
	LoanID             string          `json:"loan_id"`
	RefNbr             string          `json:"ref_nbr"`
	BorrowerID         string          `json:"borrower_id"`
	ExpectedReturnDate time.Time       `json:"expected_return_date"`
	AmountDue          decimal.Decimal `json:"amount_due"`
}
