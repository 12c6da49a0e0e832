package storage

import (
	"context"

	"github.com/chris/library-lending/pkg/fees"
)

// SettingsStore persists the admin-editable late fee configuration.
type SettingsStore interface {
	// GetLateFeeConfig returns the stored configuration, or ErrNotFound if none was saved yet.
	GetLateFeeConfig(ctx context.Context) (fees.Config, error)

	// PutLateFeeConfig replaces the stored configuration.
	PutLateFeeConfig(ctx context.Context, cfg fees.Config) error
}
