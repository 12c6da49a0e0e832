// Package reminders holds the scheduled overdue sweep and the reminder worker run by the lambdas.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/scheduler"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/websockets"
)

// OverdueMarker persists the overdue status for loans past their expected return date.
type OverdueMarker interface {
	MarkOverdueLoans(ctx context.Context) ([]lending.LoanView, error)
}

// LoanGetter reads a loan with its fees computed as of now.
type LoanGetter interface {
	GetLoan(ctx context.Context, loanID string) (*lending.LoanView, error)
}

// Sweeper marks loans overdue and queues one reminder for each loan it changed.
type Sweeper struct {
	Loans     OverdueMarker
	Scheduler scheduler.ReminderScheduler
	// Delay postpones delivery of every reminder; SQS caps it at scheduler.MaxDelay.
	Delay  time.Duration
	Logger *slog.Logger
	Now    func() time.Time
}

// Run performs one sweep. A reminder that cannot be queued is logged and skipped.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	logger := s.logger()
	logger.Info("starting overdue sweep")

	overdue, err := s.Loans.MarkOverdueLoans(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue loans: %w", err)
	}
	if len(overdue) == 0 {
		logger.Info("no loans became overdue")
		return 0, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	queued := 0
	for _, loan := range overdue {
		reminder := scheduler.LoanReminder{
			LoanID:             loan.Id,
			RefNbr:             loan.RefNbr,
			BorrowerID:         loan.BorrowerId,
			BookID:             loan.BookId,
			ExpectedReturnDate: loan.ExpectedReturnDate,
			EnqueuedAt:         now(),
		}
		if err := s.Scheduler.ScheduleReminder(ctx, reminder, s.Delay); err != nil {
			logger.Error("failed to queue reminder", "loan_id", loan.Id, "error", err)
			continue
		}
		queued++
	}

	logger.Info("overdue sweep finished", "overdue", len(overdue), "queued", queued)
	return queued, nil
}

func (s *Sweeper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Notifier turns queued reminders into loanReminder websocket messages.
type Notifier struct {
	Loans     LoanGetter
	Publisher websockets.Publisher
	Logger    *slog.Logger
}

// HandleSQS processes a batch and reports failed messages so only those are retried.
func (n *Notifier) HandleSQS(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range event.Records {
		if err := n.handle(ctx, message.Body); err != nil {
			n.logger().Error("failed to process reminder", "message_id", message.MessageId, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		}
	}
	return resp, nil
}

func (n *Notifier) handle(ctx context.Context, body string) error {
	reminder, err := scheduler.DecodeReminder(body)
	if err != nil {
		return err
	}

	loan, err := n.Loans.GetLoan(ctx, reminder.LoanID)
	if errors.Is(err, storage.ErrNotFound) {
		n.logger().Info("dropping reminder for deleted loan", "loan_id", reminder.LoanID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load loan %s: %w", reminder.LoanID, err)
	}
	if !loan.Status.Open() {
		n.logger().Info("dropping reminder for closed loan", "loan_id", loan.Id, "status", loan.Status)
		return nil
	}

	msg := websockets.Message{
		Type: websockets.MessageTypeLoanReminder,
		Payload: websockets.LoanReminderPayload{
			LoanID:             loan.Id,
			RefNbr:             loan.RefNbr,
			BorrowerID:         loan.BorrowerId,
			ExpectedReturnDate: loan.ExpectedReturnDate,
			AmountDue:          loan.AmountDue,
		},
	}
	if err := n.Publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish reminder for loan %s: %w", loan.Id, err)
	}
	return nil
}

func (n *Notifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}
