package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	jsoniter "github.com/json-iterator/go"
)

// MaxDelay is the longest delivery delay SQS accepts for a single message.
const MaxDelay = 900 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SQSAPI is the subset of the SQS client used by the scheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the ReminderScheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ ReminderScheduler = (*SQSScheduler)(nil)

// ScheduleReminder sends the reminder to an SQS queue. Delays beyond MaxDelay are clamped.
func (s *SQSScheduler) ScheduleReminder(ctx context.Context, reminder LoanReminder, delay time.Duration) error {
	body, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: delaySeconds(delay),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}

func delaySeconds(delay time.Duration) int32 {
	if delay <= 0 {
		return 0
	}
	if delay > MaxDelay {
		delay = MaxDelay
	}
	return int32(delay / time.Second)
}

// DecodeReminder parses an SQS message body written by ScheduleReminder.
func DecodeReminder(body string) (LoanReminder, error) {
	var r LoanReminder
	if err := json.UnmarshalFromString(body, &r); err != nil {
		return LoanReminder{}, fmt.Errorf("failed to unmarshal reminder: %w", err)
	}
	if r.LoanID == "" {
		return LoanReminder{}, fmt.Errorf("reminder has no loan id")
	}
	return r, nil
}
