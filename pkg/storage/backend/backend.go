// Package backend opens the storage implementation selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/library-lending/pkg/config"
	"github.com/chris/library-lending/pkg/storage"
	dynamostore "github.com/chris/library-lending/pkg/storage/dynamodb"
	"github.com/chris/library-lending/pkg/storage/memory"
	"github.com/chris/library-lending/pkg/storage/postgres"
)

// Open returns the configured store and a function releasing its resources.
// awsCfg is only used by the dynamodb backend and may be the zero value otherwise.
func Open(ctx context.Context, cfg *config.Config, awsCfg aws.Config, logger *slog.Logger) (storage.Storage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), func() {}, nil

	case config.BackendDynamoDB:
		client := dynamodb.NewFromConfig(awsCfg)
		store := dynamostore.New(client, dynamostore.Tables{
			Books:                cfg.DynamoDB.Books,
			Loans:                cfg.DynamoDB.Loans,
			Refs:                 cfg.DynamoDB.Refs,
			Ledger:               cfg.DynamoDB.Ledger,
			Borrowers:            cfg.DynamoDB.Borrowers,
			Settings:             cfg.DynamoDB.Settings,
			WebsocketConnections: cfg.DynamoDB.WebsocketConnections,
		})
		return store, func() {}, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.New(pool, logger)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// LoadAWSConfig loads the default AWS SDK configuration.
func LoadAWSConfig(ctx context.Context) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return awsCfg, nil
}
