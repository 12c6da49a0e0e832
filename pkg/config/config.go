// Package config loads service settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

// DynamoDBTables holds the table names, read from DYNAMODB_<NAME>_TABLE_NAME.
type DynamoDBTables struct {
	Books                string `mapstructure:"books_table_name"`
	Loans                string `mapstructure:"loans_table_name"`
	Refs                 string `mapstructure:"refs_table_name"`
	Ledger               string `mapstructure:"ledger_table_name"`
	Borrowers            string `mapstructure:"borrowers_table_name"`
	Settings             string `mapstructure:"settings_table_name"`
	WebsocketConnections string `mapstructure:"websocket_connections_table_name"`
}

// LateFeeDefaults is the fee configuration used until an admin saves one.
type LateFeeDefaults struct {
	Enabled  bool   `mapstructure:"enabled"`
	Rate     string `mapstructure:"rate"`
	Interval string `mapstructure:"interval"`
}

// Config is the typed view of every setting the binaries read.
type Config struct {
	HTTPPort             string          `mapstructure:"http_port"`
	LogLevel             string          `mapstructure:"log_level"`
	StorageBackend       string          `mapstructure:"storage_backend"`
	DatabaseURL          string          `mapstructure:"database_url"`
	SQSQueueURL          string          `mapstructure:"sqs_queue_url"`
	WebsocketAPIEndpoint string          `mapstructure:"websocket_api_endpoint"`
	ReminderDelay        time.Duration   `mapstructure:"reminder_delay"`
	DynamoDB             DynamoDBTables  `mapstructure:"dynamodb"`
	LateFee              LateFeeDefaults `mapstructure:"late_fee"`
}

var defaults = map[string]any{
	"http_port":              "8080",
	"log_level":              "info",
	"storage_backend":        BackendMemory,
	"database_url":           "",
	"sqs_queue_url":          "",
	"websocket_api_endpoint": "",
	"reminder_delay":         "0s",

	"dynamodb.books_table_name":                 "",
	"dynamodb.loans_table_name":                 "",
	"dynamodb.refs_table_name":                  "",
	"dynamodb.ledger_table_name":                "",
	"dynamodb.borrowers_table_name":             "",
	"dynamodb.settings_table_name":              "",
	"dynamodb.websocket_connections_table_name": "",

	"late_fee.enabled":  true,
	"late_fee.rate":     "0.25",
	"late_fee.interval": "day",
}

// Load reads .env when present, then the environment. Nested keys map to upper-case
// variables joined by underscores, so dynamodb.loans_table_name is DYNAMODB_LOANS_TABLE_NAME.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))

	return &c, nil
}

// Validate checks the settings every binary needs: the storage backend and the default fee policy.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres backend"))
		}
	case BackendDynamoDB:
		for env, value := range map[string]string{
			"DYNAMODB_BOOKS_TABLE_NAME":                 c.DynamoDB.Books,
			"DYNAMODB_LOANS_TABLE_NAME":                 c.DynamoDB.Loans,
			"DYNAMODB_REFS_TABLE_NAME":                  c.DynamoDB.Refs,
			"DYNAMODB_LEDGER_TABLE_NAME":                c.DynamoDB.Ledger,
			"DYNAMODB_BORROWERS_TABLE_NAME":             c.DynamoDB.Borrowers,
			"DYNAMODB_SETTINGS_TABLE_NAME":              c.DynamoDB.Settings,
			"DYNAMODB_WEBSOCKET_CONNECTIONS_TABLE_NAME": c.DynamoDB.WebsocketConnections,
		} {
			if value == "" {
				errs = append(errs, fmt.Errorf("%s is required for the dynamodb backend", env))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND %q is not one of memory, dynamodb, postgres", c.StorageBackend))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.DefaultLateFees(); err != nil {
		errs = append(errs, err)
	}
	if c.ReminderDelay < 0 {
		errs = append(errs, errors.New("REMINDER_DELAY must not be negative"))
	}

	return errors.Join(errs...)
}

// RequireQueue checks the settings needed to enqueue reminders.
func (c *Config) RequireQueue() error {
	if c.SQSQueueURL == "" {
		return errors.New("SQS_QUEUE_URL is required")
	}
	return nil
}

// RequireWebsocketEndpoint checks the settings needed to push messages through API Gateway.
func (c *Config) RequireWebsocketEndpoint() error {
	if c.WebsocketAPIEndpoint == "" {
		return errors.New("WEBSOCKET_API_ENDPOINT is required")
	}
	return nil
}

// DefaultLateFees converts the LATE_FEE_* settings into a fee configuration.
func (c *Config) DefaultLateFees() (fees.Config, error) {
	rate, err := decimal.NewFromString(c.LateFee.Rate)
	if err != nil {
		return fees.Config{}, fmt.Errorf("LATE_FEE_RATE %q is not a decimal: %w", c.LateFee.Rate, err)
	}
	cfg := fees.Config{Enabled: c.LateFee.Enabled, Rate: rate, Interval: c.LateFee.Interval}
	if err := cfg.Validate(); err != nil {
		return fees.Config{}, fmt.Errorf("LATE_FEE_*: %w", err)
	}
	return cfg, nil
}
