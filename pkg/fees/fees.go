// Package fees computes late fees for loans that run past their expected return date.
package fees

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInterval is returned when a billing interval cannot be parsed or is not positive.
var ErrInvalidInterval = errors.New("invalid late fee interval")

// Config is the process-wide late fee configuration.
type Config struct {
	Enabled  bool            `json:"enabled"`
	Rate     decimal.Decimal `json:"rate"`
	Interval string          `json:"interval"`
}

// Provider supplies the late fee configuration in effect at the time of the call.
type Provider interface {
	LateFeeConfig(ctx context.Context) (Config, error)
}

// StaticProvider always returns the same configuration.
type StaticProvider Config

// LateFeeConfig returns the wrapped configuration.
func (p StaticProvider) LateFeeConfig(context.Context) (Config, error) {
	return Config(p), nil
}

var namedIntervals = map[string]time.Duration{
	"hour": time.Hour,
	"day":  24 * time.Hour,
	"week": 7 * 24 * time.Hour,
}

// ParseInterval converts a unit name ("hour", "day", "week") or a Go duration string into a duration.
func ParseInterval(s string) (time.Duration, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if d, ok := namedIntervals[name]; ok {
		return d, nil
	}
	d, err := time.ParseDuration(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidInterval, s)
	}
	return d, nil
}

// Validate checks that the configuration can be used for billing.
func (c Config) Validate() error {
	if c.Rate.IsNegative() {
		return errors.New("late fee rate must not be negative")
	}
	if _, err := ParseInterval(c.Interval); err != nil {
		return err
	}
	return nil
}

// OverdueUnits returns how many started billing intervals lie between expected and end.
// It is zero when end is not after expected.
func OverdueUnits(expected, end time.Time, interval time.Duration) int64 {
	late := end.Sub(expected)
	if late <= 0 || interval <= 0 {
		return 0
	}
	units := int64(late / interval)
	if late%interval != 0 {
		units++
	}
	return units
}

// Calculate returns the late fee owed for a loan due at expected and closed (or observed) at end.
// A disabled configuration always yields zero.
func Calculate(expected, end time.Time, cfg Config) (decimal.Decimal, error) {
	if !cfg.Enabled {
		return decimal.Zero, nil
	}
	interval, err := ParseInterval(cfg.Interval)
	if err != nil {
		return decimal.Zero, err
	}
	units := OverdueUnits(expected, end, interval)
	if units == 0 || !cfg.Rate.IsPositive() {
		return decimal.Zero, nil
	}
	return cfg.Rate.Mul(decimal.NewFromInt(units)), nil
}

// AmountDue picks the manual override when one was entered, otherwise the calculated fee.
func AmountDue(manual *decimal.Decimal, calculated decimal.Decimal) decimal.Decimal {
	if manual != nil {
		return *manual
	}
	return calculated
}
