package lending

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/storage"
)

// SettingsFeeProvider reads the late fee configuration from the settings store on every call,
// so admin edits apply to the next computation without a restart.
type SettingsFeeProvider struct {
	Store   storage.SettingsStore
	Default fees.Config
}

// NewSettingsFeeProvider creates a provider that falls back to def until a configuration is saved.
func NewSettingsFeeProvider(store storage.SettingsStore, def fees.Config) *SettingsFeeProvider {
	return &SettingsFeeProvider{Store: store, Default: def}
}

// LateFeeConfig returns the stored configuration or the default when none exists.
func (p *SettingsFeeProvider) LateFeeConfig(ctx context.Context) (fees.Config, error) {
	cfg, err := p.Store.GetLateFeeConfig(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return p.Default, nil
	}
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to read late fee configuration: %w", err)
	}
	return cfg, nil
}
