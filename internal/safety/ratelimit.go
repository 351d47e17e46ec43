// ABOUTME: Fixed-window rate limiter keyed by client identifier
// ABOUTME: Tracks per-minute and per-hour windows, reporting retry timing
package safety

import (
	"math"
	"sync"
	"time"
)

const (
	// DefaultPerMinute is the per-client request budget per minute
	DefaultPerMinute = 20
	// DefaultPerHour is the per-client request budget per hour
	DefaultPerHour = 100
)

// Result reports the outcome of a rate limit check. Window, Limit,
// Remaining, and ResetIn describe the tighter of the two windows.
type Result struct {
	Allowed    bool
	Window     string
	Limit      int
	Remaining  int
	ResetIn    time.Duration
	RetryAfter int
}

type window struct {
	count int
	reset time.Time
}

// RateLimiter enforces fixed-window limits per client
type RateLimiter struct {
	mu        sync.Mutex
	perMinute int
	perHour   int
	windows   map[string]*window
	now       func() time.Time
}

// NewRateLimiter creates a limiter with the given per-minute and per-hour budgets
func NewRateLimiter(perMinute, perHour int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		perHour:   perHour,
		windows:   map[string]*window{},
		now:       time.Now,
	}
}

// Check records a request from clientID and reports whether it is allowed.
// Both windows are consumed on every call.
func (rl *RateLimiter) Check(clientID string) Result {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)

	minute := rl.bump(clientID+":minute", now, time.Minute)
	hour := rl.bump(clientID+":hour", now, time.Hour)

	minuteResult := windowResult("minute", rl.perMinute, minute, now)
	hourResult := windowResult("hour", rl.perHour, hour, now)

	if !hourResult.Allowed {
		return hourResult
	}
	if !minuteResult.Allowed {
		return minuteResult
	}
	// Report the window closer to exhaustion
	if hourResult.Remaining < minuteResult.Remaining {
		return hourResult
	}
	return minuteResult
}

func (rl *RateLimiter) bump(key string, now time.Time, span time.Duration) *window {
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.reset) {
		w = &window{reset: now.Add(span)}
		rl.windows[key] = w
	}
	w.count++
	return w
}

func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if !now.Before(w.reset) {
			delete(rl.windows, key)
		}
	}
}

func windowResult(name string, limit int, w *window, now time.Time) Result {
	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	resetIn := w.reset.Sub(now)

	result := Result{
		Allowed:   w.count <= limit,
		Window:    name,
		Limit:     limit,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
	if !result.Allowed {
		result.RetryAfter = int(math.Ceil(resetIn.Seconds()))
		if result.RetryAfter < 1 {
			result.RetryAfter = 1
		}
	}
	return result
}
