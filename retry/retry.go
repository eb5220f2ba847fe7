// Package retry provides a small exponential backoff runner for calls
// to upstream services.
package retry

import (
	"context"
	"time"
)

// Policy controls how often and how long an operation is retried.
// Retryable decides per error whether another attempt makes sense, a
// nil Retryable retries everything.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Retryable   func(error) bool
}

// DefaultPolicy mirrors the backoff used against the quoting service:
// up to 8 attempts, delays doubling from 1s and capped at 10s.
func DefaultPolicy(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts: 8,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
		Retryable:   retryable,
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, the
// attempts are exhausted or the context ends. The last error seen is
// returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return lastErr
}
