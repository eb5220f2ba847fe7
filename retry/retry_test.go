package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zeebo/assert"

	"github.com/neptune-labs/neptune-intents-hub/retry"
)

func fastPolicy(attempts int, retryable func(error) bool) retry.Policy {
	return retry.Policy{
		MaxAttempts: attempts,
		BaseDelay:   time.Microsecond,
		MaxDelay:    time.Millisecond,
		Retryable:   retryable,
	}
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := fastPolicy(8, nil).Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("still down")
	err := fastPolicy(8, nil).Do(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 8, calls)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	terminal := errors.New("bad request")
	calls := 0
	err := fastPolicy(8, func(err error) bool { return !errors.Is(err, terminal) }).
		Do(context.Background(), func(context.Context) error {
			calls++
			return terminal
		})
	assert.True(t, errors.Is(err, terminal))
	assert.Equal(t, 1, calls)
}

func TestDoHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := retry.Policy{MaxAttempts: 8, BaseDelay: time.Hour}
	calls := 0
	err := policy.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, calls)
}

func TestDefaultPolicyShape(t *testing.T) {
	p := retry.DefaultPolicy(nil)
	assert.Equal(t, 8, p.MaxAttempts)
	assert.Equal(t, time.Second, p.BaseDelay)
	assert.Equal(t, 10*time.Second, p.MaxDelay)
}
