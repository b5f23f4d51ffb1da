package services

import (
	"sync"
	"time"
)

// RateLimiter enforces a per-user sliding-window call budget. The window
// state is process-local; all reads and writes happen under one lock so
// concurrent calls for the same user cannot both slip past the ceiling.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewRateLimiter returns a limiter admitting at most limit calls per user
// within the trailing window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether a call for userID is admitted. Admitted calls are
// recorded; rejected calls leave the window untouched.
func (rl *RateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.prune(userID)
	if len(kept) >= rl.limit {
		return false
	}

	rl.windows[userID] = append(kept, rl.now())
	return true
}

// Count returns the number of calls recorded for userID within the trailing
// window. It prunes expired entries but never admits a call.
func (rl *RateLimiter) Count(userID string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.prune(userID)
	rl.windows[userID] = kept
	return len(kept)
}

// Remaining returns how many calls userID may still make in the current
// window.
func (rl *RateLimiter) Remaining(userID string) int {
	remaining := rl.limit - rl.Count(userID)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// prune drops timestamps older than the window. Caller must hold rl.mu.
func (rl *RateLimiter) prune(userID string) []time.Time {
	cutoff := rl.now().Add(-rl.window)
	kept := rl.windows[userID][:0]
	for _, ts := range rl.windows[userID] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
