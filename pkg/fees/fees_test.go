package fees

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{Enabled: true, Rate: decimal.NewFromInt(10), Interval: "day"}

	t.Run("Three Days Late", func(t *testing.T) {
		amount, err := Calculate(due, due.Add(72*time.Hour), cfg)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30).Equal(amount), "got %s", amount)
	})

	t.Run("Partial Interval Rounds Up", func(t *testing.T) {
		amount, err := Calculate(due, due.Add(49*time.Hour), cfg)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30).Equal(amount), "got %s", amount)
	})

	t.Run("On Time", func(t *testing.T) {
		amount, err := Calculate(due, due, cfg)

		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("Before Due Date", func(t *testing.T) {
		amount, err := Calculate(due, due.Add(-48*time.Hour), cfg)

		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("Disabled", func(t *testing.T) {
		disabled := cfg
		disabled.Enabled = false

		amount, err := Calculate(due, due.Add(72*time.Hour), disabled)

		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("Fractional Rate", func(t *testing.T) {
		weekly := Config{Enabled: true, Rate: decimal.RequireFromString("2.50"), Interval: "week"}

		amount, err := Calculate(due, due.Add(8*24*time.Hour), weekly)

		require.NoError(t, err)
		assert.Equal(t, "5", amount.String())
	})

	t.Run("Invalid Interval", func(t *testing.T) {
		bad := Config{Enabled: true, Rate: decimal.NewFromInt(1), Interval: "fortnight"}

		_, err := Calculate(due, due.Add(time.Hour), bad)

		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestCalculateIsMonotonic(t *testing.T) {
	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cfg := Config{Enabled: true, Rate: decimal.NewFromInt(3), Interval: "day"}

	previous := decimal.Zero
	for h := -48; h <= 24*10; h += 5 {
		amount, err := Calculate(due, due.Add(time.Duration(h)*time.Hour), cfg)
		require.NoError(t, err)

		assert.False(t, amount.LessThan(previous), "fee decreased at +%dh", h)
		assert.False(t, amount.IsNegative())
		if h <= 0 {
			assert.True(t, amount.IsZero(), "fee before due date at %dh", h)
		}
		previous = amount
	}
}

func TestParseInterval(t *testing.T) {
	cases := map[string]time.Duration{
		"day":  24 * time.Hour,
		"Day ": 24 * time.Hour,
		"hour": time.Hour,
		"week": 7 * 24 * time.Hour,
		"36h":  36 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseInterval(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseInterval("-1h")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestAmountDue(t *testing.T) {
	manual := decimal.NewFromInt(5)

	assert.True(t, manual.Equal(AmountDue(&manual, decimal.NewFromInt(40))))
	assert.True(t, decimal.NewFromInt(40).Equal(AmountDue(nil, decimal.NewFromInt(40))))
}

func TestStaticProvider(t *testing.T) {
	cfg := Config{Enabled: true, Rate: decimal.NewFromInt(1), Interval: "day"}

	got, err := StaticProvider(cfg).LateFeeConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
