// Package ratelimit paces outbound catalog calls. One Limiter is shared by
// every catalog client call in the process, so concurrent pool generations
// contend on the same clock.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultMinInterval = 250 * time.Millisecond

	backoffBase = 1000 * time.Millisecond
	backoffCap  = 30000 * time.Millisecond
	backoffMod  = 5
)

type Limiter struct {
	limiter *rate.Limiter
	sleep   func(ctx context.Context, d time.Duration) error
}

type LimiterOption func(*Limiter)

// WithSleeper replaces the backoff sleep, for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) LimiterOption {
	return func(l *Limiter) {
		l.sleep = sleep
	}
}

func New(minInterval time.Duration, opts ...LimiterOption) *Limiter {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	l := &Limiter{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		sleep:   sleepCtx,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Acquire blocks until at least the configured interval has passed since the
// previously permitted call. Callers arrive FIFO.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Backoff suspends the caller for the delay assigned to the given retry
// attempt (zero-based).
func (l *Limiter) Backoff(ctx context.Context, attempt int) error {
	return l.sleep(ctx, BackoffDelay(attempt))
}

// BackoffDelay computes min(1s * 2^(attempt mod 5), 30s).
func BackoffDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := backoffBase << (attempt % backoffMod)
	if d > backoffCap {
		d = backoffCap
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
