// Package retrylimit paces and retries calls against rate-limited
// upstream APIs. The pipeline itself never retries; this belongs to the
// client layer underneath it.
//
// Example usage:
//
//	lim := retrylimit.New(2, 1, 4)
//	err := lim.Do(ctx, "register commands", func() error {
//	    return pushCommands()
//	})
package retrylimit

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

const baseDelay = 500 * time.Millisecond

// Limiter combines a token-bucket pacer with bounded retry.
type Limiter struct {
	limiter  *rate.Limiter
	attempts int
}

// New creates a Limiter allowing rps requests per second with the given
// burst, retrying each call up to attempts times.
func New(rps rate.Limit, burst, attempts int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	if attempts < 1 {
		attempts = 1
	}
	return &Limiter{
		limiter:  rate.NewLimiter(rps, burst),
		attempts: attempts,
	}
}

// Do runs fn, waiting for a token first and retrying with jittered
// exponential backoff on failure. op names the call for log context.
func (l *Limiter) Do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= l.attempts; attempt++ {
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if attempt == l.attempts {
			break
		}
		delay := backoff(attempt)
		log.Printf("[WARN] %s failed (attempt %d/%d), retrying in %s: %v", op, attempt, l.attempts, delay, lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

// backoff returns the delay before the next attempt: doubling from
// baseDelay with up to 25% jitter.
func backoff(attempt int) time.Duration {
	delay := baseDelay << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(delay) / 4))
	return delay + jitter
}
