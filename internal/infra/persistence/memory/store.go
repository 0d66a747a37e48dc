// Package memory provides a process-local KeyValueStore, used in tests and local development.
package memory

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain/repository"
)

// Store keeps records in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records map[repository.Key][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{records: make(map[repository.Key][]byte)}
}

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key repository.Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

// Set stores a copy of value.
func (s *Store) Set(_ context.Context, key repository.Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = slices.Clone(value)

	return nil
}

// SetIfAbsent stores a copy of value unless key is already present.
func (s *Store) SetIfAbsent(_ context.Context, key repository.Key, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return false, nil
	}
	s.records[key] = slices.Clone(value)

	return true, nil
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key repository.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)

	return nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
