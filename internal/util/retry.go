// ABOUTME: Backoff calculation and context-aware sleep for retry loops
// ABOUTME: Exponential growth with jitter, capped at a fixed ceiling
package util

import (
	"context"
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt. Attempt 1 waits
// roughly baseDelay, attempt 2 roughly double that, and so on, capped at 30
// seconds. A ±25% jitter spreads out concurrent retriers.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}

	delay := baseDelay * time.Duration(1<<uint(attempt-1))
	if delay <= 0 || delay > maxBackoff {
		delay = maxBackoff
	}

	// jitter in [-25%, +25%]
	jitter := time.Duration((rand.Float64() - 0.5) * 0.5 * float64(delay))
	delay += jitter
	if delay < 0 {
		delay = 0
	}
	return delay
}

// SleepContext waits for d or until ctx is done, whichever comes first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
