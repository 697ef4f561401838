package ttlstore

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestStore[V any]() (*Store[V], *fakeClock) {
	clock := &fakeClock{current: time.Now()}
	s := New[V]()
	s.now = clock.now
	return s, clock
}

func TestSetGet(t *testing.T) {
	s, _ := newTestStore[string]()

	s.Set("a", "alpha", time.Minute)
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestGetExpiredBehavesAsAbsentAndDeletes(t *testing.T) {
	s, clock := newTestStore[int]()

	s.Set("n", 42, time.Second)
	clock.advance(time.Second) // exactly at expiry: already gone

	_, ok := s.Get("n")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len(), "expired entry must be deleted by the read")
}

func TestSetReplacesTTL(t *testing.T) {
	s, clock := newTestStore[int]()

	s.Set("n", 1, time.Second)
	s.Set("n", 2, time.Minute)
	clock.advance(2 * time.Second)

	v, ok := s.Get("n")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestNonPositiveTTLRemoves(t *testing.T) {
	s, _ := newTestStore[int]()

	s.Set("n", 1, time.Minute)
	s.Set("n", 2, 0)
	_, ok := s.Get("n")
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	s, clock := newTestStore[int]()

	s.Set("short", 1, time.Second)
	s.Set("long", 2, time.Hour)
	clock.advance(2 * time.Second)

	removed := s.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("long")
	assert.True(t, ok)
}

func TestDeleteFunc(t *testing.T) {
	s, _ := newTestStore[int]()

	s.Set("daily:u1", 1, time.Minute)
	s.Set("daily:u2", 2, time.Minute)
	s.Set("weekly:u1", 3, time.Minute)

	removed := s.DeleteFunc(func(key string) bool {
		return strings.HasPrefix(key, "daily:")
	})
	assert.Equal(t, 2, removed)

	_, ok := s.Get("weekly:u1")
	assert.True(t, ok)
	_, ok = s.Get("daily:u1")
	assert.False(t, ok)
}

func TestFlush(t *testing.T) {
	s, _ := newTestStore[int]()

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)
	s.Flush()
	assert.Equal(t, 0, s.Len())
}
