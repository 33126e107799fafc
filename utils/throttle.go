package utils

import (
	"sync"
	"time"
)

// Throttle rate-limits periodic writes per key. Watch-time samples pass at
// most once per interval; a completion transition bypasses the throttle at
// the call site since it is a state edge, not a periodic sample.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	now      func() time.Time
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether a write for key may proceed, recording the attempt
// time when it may
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[key]; ok && now.Sub(last) < t.interval {
		return false
	}
	t.last[key] = now
	return true
}

// Reset clears the throttle state for key
func (t *Throttle) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, key)
}
