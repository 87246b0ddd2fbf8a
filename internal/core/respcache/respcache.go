// Package respcache memoizes idempotent provider results for a short TTL.
// Backends never fail a request: every backend error reads as a miss
package respcache

import (
	"context"
	"sync"
	"time"

	ptime "navline/internal/platform/time"
)

// DefaultTTL is the freshness window for cached provider results
const DefaultTTL = 60 * time.Second

// Cache is the surface the gateway depends on
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Ping(ctx context.Context) error
}

type entry struct {
	value      []byte
	insertedAt time.Time
}

// Memory is an in-process cache with lazy expiry on read and no background sweep
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	clock ptime.Clock
	items map[string]entry
}

// NewMemory builds a Memory cache; ttl <= 0 uses DefaultTTL and a nil clock uses wall time
func NewMemory(ttl time.Duration, clock ptime.Clock) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, clock: ptime.Or(clock), items: make(map[string]entry)}
}

// Get returns a copy of the value when present and fresh; a stale entry is removed
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if m.clock.Now().Sub(e.insertedAt) > m.ttl {
		delete(m.items, key)
		return nil, false
	}
	return clone(e.value), true
}

// Set stores a copy of value stamped with the current time
func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	m.items[key] = entry{value: clone(value), insertedAt: m.clock.Now()}
	m.mu.Unlock()
}

// Ping always succeeds
func (m *Memory) Ping(context.Context) error { return nil }

// Len reports stored entries, stale ones included
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
