package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_SucceedsAfterTransientFailures(t *testing.T) {
	r := New("test", fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_StopsOnNonRetryable(t *testing.T) {
	permanent := errors.New("bad request")
	cfg := fastConfig()
	cfg.IsRetryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New("test", cfg)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ExhaustsBudget(t *testing.T) {
	boom := errors.New("boom")
	r := New("test", fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "retry limit exceeded after 4 attempts")
	assert.Equal(t, 4, calls)
}

func TestRetrier_RespectsCancellation(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Second
	r := New("test", cfg)
	ctx, cancel := context.WithCancel(context.Background())

	err := r.Execute(ctx, func(ctx context.Context) error {
		cancel()
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_Capped(t *testing.T) {
	r := New("test", Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2})

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
