package backend

import (
	"context"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chris/library-lending/pkg/config"
	"github.com/chris/library-lending/pkg/storage/dynamodb"
	"github.com/chris/library-lending/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := Open(ctx, &config.Config{StorageBackend: config.BackendMemory}, aws.Config{}, slog.Default())
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &memory.Store{}, store)
	})

	t.Run("DynamoDB", func(t *testing.T) {
		cfg := &config.Config{
			StorageBackend: config.BackendDynamoDB,
			DynamoDB:       config.DynamoDBTables{Books: "books", Loans: "loans"},
		}
		store, closeFn, err := Open(ctx, cfg, aws.Config{Region: "us-east-1"}, slog.Default())
		require.NoError(t, err)
		defer closeFn()

		dynamo, ok := store.(*dynamodb.Store)
		require.True(t, ok)
		assert.Equal(t, "loans", dynamo.LoansTableName)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := Open(ctx, &config.Config{StorageBackend: "sqlite"}, aws.Config{}, slog.Default())
		assert.Error(t, err)
	})
}
