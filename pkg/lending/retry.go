package lending

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/chris/library-lending/pkg/storage"
)

const (
	defaultMaxAttempts  = 6
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3
)

// retryPolicy configures the optimistic concurrency retry of loan writes.
type retryPolicy struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}
}

// retryWithBackoff runs fn until it succeeds, fails with a non-retryable error, or the attempts run out.
// Schedule: 0 ms, 10 ms, 20 ms, 40 ms, 80 ms, 160 ms, each plus up to 30% jitter.
// Only storage.ErrLoanModified is retried.
func retryWithBackoff(ctx context.Context, p retryPolicy, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := p.baseDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * p.jitterFactor //nolint:gosec // jitter does not need a secure source

			select {
			case <-time.After(delay + time.Duration(jitter)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, storage.ErrLoanModified) {
			return lastErr
		}
	}

	return lastErr
}
