// file: internal/cache/cache.go
// version: 2.1.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

package cache

import (
	"sync"
)

// Store is a generic first-seen-wins map safe for concurrent use. Entries
// live for as long as the Store does; nothing is persisted.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	keyFn func(string) string
}

// New creates a store. keyFn normalizes keys before every lookup; pass nil to
// use keys verbatim.
func New[T any](keyFn func(string) string) *Store[T] {
	if keyFn == nil {
		keyFn = func(s string) string { return s }
	}
	return &Store[T]{
		items: make(map[string]T),
		keyFn: keyFn,
	}
}

// Get retrieves a value if one was stored for key.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	v, ok := s.items[s.keyFn(key)]
	s.mu.RUnlock()
	return v, ok
}

// GetOrSet stores value under key unless the key is already present, and
// returns whatever is stored afterwards. loaded reports whether an earlier
// value won.
func (s *Store[T]) GetOrSet(key string, value T) (stored T, loaded bool) {
	k := s.keyFn(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.items[k]; ok {
		return v, true
	}
	s.items[k] = value
	return value, false
}

// Len returns the number of stored keys.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
