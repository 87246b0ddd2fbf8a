// Package throttle is per-caller sliding-window admission control shared by
// every in-flight request
package throttle

import (
	"strings"
	"sync"
	"time"

	ptime "navline/internal/platform/time"
)

// Defaults for the telephony entry point
const (
	DefaultWindow = 60 * time.Second
	DefaultLimit  = 30

	// Anonymous is the shared bucket for requests without a caller id
	Anonymous = "anonymous"
)

// Limiter keeps ordered admit timestamps per caller under a single mutex
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	clock  ptime.Clock
	seen   map[string][]time.Time
}

// New builds a Limiter; non-positive values fall back to the defaults
func New(window time.Duration, limit int, clock ptime.Clock) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Limiter{
		window: window,
		limit:  limit,
		clock:  ptime.Or(clock),
		seen:   make(map[string][]time.Time),
	}
}

// Admit prunes timestamps that left the window, then admits when the caller is
// under the limit and records the admit. Rejections are not recorded
func (l *Limiter) Admit(callerID string) bool {
	key := strings.TrimSpace(callerID)
	if key == "" {
		key = Anonymous
	}
	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.seen[key]
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	ts = ts[i:]

	if len(ts) >= l.limit {
		l.seen[key] = ts
		return false
	}
	l.seen[key] = append(ts, now)
	return true
}

// Tracked reports how many callers currently hold a bucket
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
