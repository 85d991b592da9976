package kvstore

import (
	"context"
	"sync"
)

// MemoryKV keeps values in a map. Nothing survives the process.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV returns an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get implements KV
func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements KV
func (s *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Remove implements KV
func (s *MemoryKV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close implements KV
func (s *MemoryKV) Close() error {
	return nil
}

// Location implements KV
func (s *MemoryKV) Location() string {
	return "(in memory)"
}
