package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, BackendMemory, cfg.StorageBackend)
		assert.NoError(t, cfg.Validate())

		fees, err := cfg.DefaultLateFees()
		require.NoError(t, err)
		assert.True(t, fees.Enabled)
		assert.True(t, fees.Rate.Equal(decimal.RequireFromString("0.25")))
		assert.Equal(t, "day", fees.Interval)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("STORAGE_BACKEND", " DynamoDB ")
		t.Setenv("DYNAMODB_LOANS_TABLE_NAME", "loans")
		t.Setenv("LATE_FEE_ENABLED", "false")
		t.Setenv("REMINDER_DELAY", "90s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, BackendDynamoDB, cfg.StorageBackend)
		assert.Equal(t, "loans", cfg.DynamoDB.Loans)
		assert.False(t, cfg.LateFee.Enabled)
		assert.Equal(t, 90*time.Second, cfg.ReminderDelay)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			StorageBackend: BackendMemory,
			LogLevel:       "info",
			LateFee:        LateFeeDefaults{Enabled: true, Rate: "1", Interval: "day"},
		}
	}

	t.Run("Memory Backend", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Postgres Needs Database Url", func(t *testing.T) {
		cfg := valid()
		cfg.StorageBackend = BackendPostgres
		assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

		cfg.DatabaseURL = "postgres://localhost/library"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("DynamoDB Names Missing Tables", func(t *testing.T) {
		cfg := valid()
		cfg.StorageBackend = BackendDynamoDB
		cfg.DynamoDB = DynamoDBTables{Books: "books", Loans: "loans"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DYNAMODB_LEDGER_TABLE_NAME")
		assert.NotContains(t, err.Error(), "DYNAMODB_BOOKS_TABLE_NAME")
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		cfg := valid()
		cfg.StorageBackend = "sqlite"
		assert.ErrorContains(t, cfg.Validate(), "sqlite")
	})

	t.Run("Bad Fee Defaults", func(t *testing.T) {
		cfg := valid()
		cfg.LateFee.Rate = "ten"
		assert.ErrorContains(t, cfg.Validate(), "LATE_FEE_RATE")
		_, err := cfg.DefaultLateFees()
		assert.Error(t, err)

		cfg = valid()
		cfg.LateFee.Interval = "fortnight"
		assert.Error(t, cfg.Validate())
		_, err = cfg.DefaultLateFees()
		assert.Error(t, err)
	})

	t.Run("Bad Log Level", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "loud"
		assert.ErrorContains(t, cfg.Validate(), "LOG_LEVEL")
	})
}

func TestRequire(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.RequireQueue(), "SQS_QUEUE_URL")
	assert.ErrorContains(t, cfg.RequireWebsocketEndpoint(), "WEBSOCKET_API_ENDPOINT")

	cfg.SQSQueueURL = "https://sqs.local/reminders"
	cfg.WebsocketAPIEndpoint = "https://ws.local"
	assert.NoError(t, cfg.RequireQueue())
	assert.NoError(t, cfg.RequireWebsocketEndpoint())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
