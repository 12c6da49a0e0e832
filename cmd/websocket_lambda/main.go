package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/library-lending/pkg/config"
	wshandlers "github.com/chris/library-lending/pkg/handlers/websockets"
	"github.com/chris/library-lending/pkg/storage/backend"
)

var handler *wshandlers.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
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

	handler = wshandlers.NewHandler(store, nil, logger)
}

func main() {
	lambda.Start(handler.Route)
}
