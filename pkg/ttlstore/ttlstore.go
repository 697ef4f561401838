// Package ttlstore provides a generic key-value store with per-entry
// time-to-live. Expired entries behave as absent: a read past the TTL
// returns nothing and removes the entry, and a periodic sweep clears
// whatever lazy reads did not reach.
//
// Example usage:
//
//	store := ttlstore.New[string]()
//	go store.Run(ctx, 5*time.Minute)
//
//	store.Set("greeting", "hello", 30*time.Second)
//	v, ok := store.Get("greeting")
package ttlstore

import (
	"context"
	"sync"
	"time"
)

// DefaultSweepInterval is the sweep period used when Run is given a
// non-positive interval.
const DefaultSweepInterval = 5 * time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a thread-safe TTL keyed store. TTLs are evaluated against
// the monotonic reading carried by time.Time, so wall-clock jumps do
// not shorten or extend entry lifetimes.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty Store.
func New[V any]() *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Set stores value under key for the given TTL, replacing any previous
// entry. A non-positive TTL removes the key.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		delete(s.entries, key)
		return
	}
	s.entries[key] = entry[V]{value: value, expiresAt: s.now().Add(ttl)}
}

// Get returns the value stored under key. An entry whose TTL has passed
// is treated as absent and deleted on the spot, so memory stays bounded
// between sweeps even for keys that are read but never swept.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Delete removes key if present.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// DeleteFunc removes every live entry whose key matches and reports how
// many were removed.
func (s *Store[V]) DeleteFunc(match func(key string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.entries {
		if match(key) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Sweep removes all expired entries and reports how many were removed.
func (s *Store[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Flush removes every entry.
func (s *Store[V]) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry[V])
}

// Len returns the number of entries currently held, expired ones that
// have not yet been swept included.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps the store on the given interval until ctx is done. Call
// from main or the owning component's lifecycle.
func (s *Store[V]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
