package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/library-lending/pkg/config"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/reminders"
	"github.com/chris/library-lending/pkg/scheduler"
	"github.com/chris/library-lending/pkg/storage/backend"
)

var sweeper *reminders.Sweeper

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	defaultFees, err := cfg.DefaultLateFees()
	if err != nil {
		log.Fatalf("invalid late fee defaults: %v", err)
	}
	if err := cfg.RequireQueue(); err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger()

	ctx := context.Background()
	awsCfg, err := backend.LoadAWSConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// Connections are reused across invocations, so the store is never closed.
	store, _, err := backend.Open(ctx, cfg, awsCfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageBackend, err)
	}

	service := lending.NewService(store, lending.NewSettingsFeeProvider(store, defaultFees), logger)

	sweeper = &reminders.Sweeper{
		Loans:     service,
		Scheduler: scheduler.NewSQSScheduler(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL),
		Delay:     cfg.ReminderDelay,
		Logger:    logger,
	}
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	_, err := sweeper.Run(ctx)
	return err
}

func main() {
	lambda.Start(HandleRequest)
}
