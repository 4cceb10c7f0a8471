package store

import (
	"sync"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: preference key, value: owned copy
	data map[string]Value

	// number of Set calls
	writes int
}

// NewMemoryStore creates a MemoryStore seeded with doc (which may be nil).
func NewMemoryStore(doc Document) *MemoryStore {
	data := make(map[string]Value, len(doc))
	for k, v := range doc {
		data[k] = v.clone()
	}
	return &MemoryStore{data: data}
}

// Get returns a copy of the value stored under key.
func (s *MemoryStore) Get(key string) (Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return Value{}, false, nil
	}
	return v.clone(), true, nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value.clone()
	s.writes++
	return nil
}

// Writes returns how many times Set has been called.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Snapshot returns a copy of the whole document.
func (s *MemoryStore) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := make(Document, len(s.data))
	for k, v := range s.data {
		doc[k] = v.clone()
	}
	return doc
}
