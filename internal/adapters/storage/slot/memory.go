package slot

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for development and tests. FailKeys
// lets tests simulate a quota failure for specific slots.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	maxBytes int

	// FailKeys maps slot keys to the error Put should return for them.
	FailKeys map[string]error
}

// NewMemoryStore creates an empty in-memory slot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		maxBytes: DefaultMaxValueBytes,
	}
}

// Get returns the slot value and whether the slot exists.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Put writes the slot value, honouring FailKeys and the size ceiling.
func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.FailKeys[key]; ok {
		return err
	}
	if len(value) > s.maxBytes {
		return ErrQuotaExceeded
	}
	s.values[key] = value
	return nil
}

// Delete removes the slot.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
