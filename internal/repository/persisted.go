package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"server-warden/pkg/ttlstore"
)

// DefaultCacheTTL is the read-cache TTL used when none is configured.
const DefaultCacheTTL = 5 * time.Minute

// Persisted is the normal-mode repository: reads go through a TTL
// cache, misses fetch from the store, and unknown ids are seeded from
// the default factory and persisted before being returned.
type Persisted[T any] struct {
	kind     string
	store    Store
	cache    *ttlstore.Store[T]
	ttl      time.Duration
	defaults func(id string) T
	group    singleflight.Group
}

// NewPersisted creates a repository for one document kind. The kind
// namespaces store keys so several repositories can share a store.
func NewPersisted[T any](kind string, store Store, cacheTTL time.Duration, defaults func(id string) T) *Persisted[T] {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Persisted[T]{
		kind:     kind,
		store:    store,
		cache:    ttlstore.New[T](),
		ttl:      cacheTTL,
		defaults: defaults,
	}
}

func (r *Persisted[T]) key(id string) string {
	return r.kind + ":" + id
}

// Get returns the cached document, or fetches and caches it. Concurrent
// misses for the same id are coalesced into one in-flight fetch.
func (r *Persisted[T]) Get(id string) (T, error) {
	key := r.key(id)
	if doc, ok := r.cache.Get(key); ok {
		return doc, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		return r.fetch(id)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (r *Persisted[T]) fetch(id string) (T, error) {
	var zero T
	key := r.key(id)

	raw, found, err := r.store.FindByID(key)
	if err != nil {
		return zero, fmt.Errorf("%w: find %s: %v", ErrUnavailable, key, err)
	}

	if !found {
		doc := r.defaults(id)
		if err := r.store.Upsert(key, doc); err != nil {
			return zero, fmt.Errorf("%w: seed %s: %v", ErrUnavailable, key, err)
		}
		r.cache.Set(key, doc, r.ttl)
		return doc, nil
	}

	doc, err := decode[T](raw)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", key, err)
	}
	r.cache.Set(key, doc, r.ttl)
	return doc, nil
}

// Update writes merged fields through to the store and invalidates the
// cache entry. The entry is not repopulated here; the next Get re-reads
// the stored document.
func (r *Persisted[T]) Update(id string, fields map[string]any) (T, error) {
	var zero T

	current, err := r.Get(id)
	if err != nil {
		return zero, err
	}

	doc, err := merge(current, fields)
	if err != nil {
		return zero, err
	}

	key := r.key(id)
	if err := r.store.Upsert(key, doc); err != nil {
		return zero, fmt.Errorf("%w: update %s: %v", ErrUnavailable, key, err)
	}
	r.cache.Delete(key)
	return doc, nil
}

// Delete removes the document from the store and the cache.
func (r *Persisted[T]) Delete(id string) error {
	key := r.key(id)
	if err := r.store.DeleteByID(key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, key, err)
	}
	r.cache.Delete(key)
	return nil
}

// Invalidate drops the cached copy for id.
func (r *Persisted[T]) Invalidate(id string) {
	r.cache.Delete(r.key(id))
}

// Run sweeps the read cache until ctx is done.
func (r *Persisted[T]) Run(ctx context.Context, interval time.Duration) {
	r.cache.Run(ctx, interval)
}
