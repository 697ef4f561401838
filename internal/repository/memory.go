package repository

import "sync"

// Memory is the bypass-mode repository: all documents live in process
// memory, with the same default-seeding rule as Persisted. It exists so
// the bot keeps working when no store is reachable, and it never fails
// with ErrUnavailable.
type Memory[T any] struct {
	mu       sync.Mutex
	docs     map[string]T
	defaults func(id string) T
}

// NewMemory creates an empty in-memory repository.
func NewMemory[T any](defaults func(id string) T) *Memory[T] {
	return &Memory[T]{
		docs:     make(map[string]T),
		defaults: defaults,
	}
}

// Get returns the document for id, seeding defaults on first access.
func (r *Memory[T]) Get(id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		doc = r.defaults(id)
		r.docs[id] = doc
	}
	return doc, nil
}

// Update merges partial fields into the stored document.
func (r *Memory[T]) Update(id string, fields map[string]any) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		doc = r.defaults(id)
	}

	merged, err := merge(doc, fields)
	if err != nil {
		var zero T
		return zero, err
	}
	r.docs[id] = merged
	return merged, nil
}

// Delete drops the document.
func (r *Memory[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

// Invalidate is a no-op: memory is the backing data, there is no stale
// cached copy to drop.
func (r *Memory[T]) Invalidate(id string) {}
