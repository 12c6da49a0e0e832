package scheduler

import (
	"context"
	"time"
)

// LoanReminder asks the reminder worker to notify a borrower about an overdue loan.
type LoanReminder struct {
	LoanID             string    `json:"loan_id"`
	RefNbr             string    `json:"ref_nbr"`
	BorrowerID         string    `json:"borrower_id"`
	BookID             string    `json:"book_id"`
	ExpectedReturnDate time.Time `json:"expected_return_date"`
	EnqueuedAt         time.Time `json:"enqueued_at"`
}

// ReminderScheduler defines the interface for a component that schedules loan reminders for later processing.
type ReminderScheduler interface {
	// ScheduleReminder enqueues a reminder, delivered no earlier than delay from now.
	ScheduleReminder(ctx context.Context, reminder LoanReminder, delay time.Duration) error
}
