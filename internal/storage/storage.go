// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"
)

// Storage adapts the JSON file datastore to the repository store
// contract. One Storage backs every repository; keys arrive already
// namespaced by document kind.
type Storage struct {
	ds *datastore.DataStore
}

// New opens (or creates) the datastore file at filePath. An error here
// means the store is unreachable and the bot should fall back to
// memory-only operation.
func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

// FindByID returns the stored document for id, if any.
func (s *Storage) FindByID(id string) (map[string]any, bool, error) {
	data, exists := s.ds.Get(id)
	if !exists {
		return nil, false, nil
	}

	// The datastore hands back whatever it unmarshalled from disk;
	// normalize through JSON into a generic map.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, false, fmt.Errorf("error marshalling record %s: %w", id, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, false, fmt.Errorf("error unmarshalling record %s: %w", id, err)
	}
	return doc, true, nil
}

// Upsert stores the document under id.
func (s *Storage) Upsert(id string, doc any) error {
	s.ds.Add(id, doc)
	return nil
}

// DeleteByID removes the document under id.
func (s *Storage) DeleteByID(id string) error {
	s.ds.Delete(id)
	return nil
}

// Close flushes and shuts down the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}
