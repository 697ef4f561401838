// Package repository provides cached access to persisted documents.
// Two implementations share one contract: Persisted backs onto a real
// store with a TTL cache, Memory keeps everything in process memory.
// The implementation is picked once at startup; callers cannot tell
// which one they hold.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnavailable reports that the persisted store failed during an
// operation. The Memory implementation never returns it.
var ErrUnavailable = errors.New("persisted store unavailable")

// Store is the persisted store contract a Persisted repository runs on.
// Keys are already namespaced by document kind.
type Store interface {
	FindByID(id string) (map[string]any, bool, error)
	Upsert(id string, doc any) error
	DeleteByID(id string) error
}

// Repository is the cached document contract. Get never reports an
// unknown id: defaults are materialized and kept exactly once.
type Repository[T any] interface {
	// Get returns the document for id, seeding defaults on first access.
	Get(id string) (T, error)
	// Update merges partial fields (keyed by JSON field name) into the
	// document and returns the result.
	Update(id string, fields map[string]any) (T, error)
	// Delete removes the document.
	Delete(id string) error
	// Invalidate drops any cached copy so the next Get re-reads the
	// backing data.
	Invalidate(id string)
}

// decode converts a generic document map into T via a JSON round trip.
func decode[T any](raw map[string]any) (T, error) {
	var doc T
	data, err := json.Marshal(raw)
	if err != nil {
		return doc, fmt.Errorf("marshal document: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

// toMap converts a document into its generic map form.
func toMap(doc any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}

// merge applies partial fields over a document and decodes the result.
func merge[T any](doc T, fields map[string]any) (T, error) {
	var zero T
	m, err := toMap(doc)
	if err != nil {
		return zero, err
	}
	for k, v := range fields {
		m[k] = v
	}
	return decode[T](m)
}
