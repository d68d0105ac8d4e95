package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 1 * time.Second}, // exponent wraps at 5
		{6, 2 * time.Second},
		{9, 16 * time.Second},
		{-1, 1 * time.Second},
	}
	for _, tt := range tests {
		if got := BackoffDelay(tt.attempt); got != tt.want {
			t.Errorf("BackoffDelay(%d) = %s, want %s", tt.attempt, got, tt.want)
		}
	}
}

func TestAcquireSpacing(t *testing.T) {
	const interval = 30 * time.Millisecond
	limiter := New(interval)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(ctx))
	}
	elapsed := time.Since(start)

	// First call is immediate, the next two each wait the interval.
	assert.GreaterOrEqual(t, elapsed, 2*interval)
}

func TestAcquireCancelled(t *testing.T) {
	limiter := New(10 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, limiter.Acquire(ctx))

	cancel()
	err := limiter.Acquire(ctx)
	assert.Error(t, err)
}

func TestBackoffUsesComputedDelay(t *testing.T) {
	var slept []time.Duration
	limiter := New(time.Millisecond, WithSleeper(func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}))

	require.NoError(t, limiter.Backoff(context.Background(), 0))
	require.NoError(t, limiter.Backoff(context.Background(), 3))

	assert.Equal(t, []time.Duration{1 * time.Second, 8 * time.Second}, slept)
}

func TestBackoffCancelled(t *testing.T) {
	limiter := New(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Backoff(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
