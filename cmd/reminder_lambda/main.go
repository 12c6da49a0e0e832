package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/library-lending/pkg/config"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/reminders"
	"github.com/chris/library-lending/pkg/storage/backend"
	"github.com/chris/library-lending/pkg/websockets"
)

var notifier *reminders.Notifier

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
	if err := cfg.RequireWebsocketEndpoint(); err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger()

	ctx := context.Background()
	awsCfg, err := backend.LoadAWSConfig(ctx)
	if err != nil {
		log.Fatal(err)
	}

	store, _, err := backend.Open(ctx, cfg, awsCfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageBackend, err)
	}

	notifier = &reminders.Notifier{
		// Amounts due are recomputed at delivery so fee edits made since the sweep apply.
		Loans:     lending.NewService(store, lending.NewSettingsFeeProvider(store, defaultFees), logger),
		Publisher: websockets.NewPublisherWithClient(store, websockets.NewManagementClient(awsCfg, cfg.WebsocketAPIEndpoint), logger),
		Logger:    logger,
	}
}

func main() {
	lambda.Start(notifier.HandleSQS)
}
