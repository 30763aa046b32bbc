package cache

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. Expired entries are dropped lazily on
// access, which is enough for the small working set of a scouting session
// (one cache line per resource/parameter combination).
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
	}
}

// Get retrieves an entry by key.
// Returns ErrCacheMiss if the key doesn't exist or the entry is expired.
func (s *MemoryStore) Get(_ context.Context, key Key) (*Entry, error) {
	cacheKey := key.String()

	s.mu.RLock()
	entry, ok := s.entries[cacheKey]
	s.mu.RUnlock()

	if !ok {
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	if entry.IsExpired() {
		s.mu.Lock()
		delete(s.entries, cacheKey)
		s.mu.Unlock()
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues("memory").Inc()
	return entry, nil
}

// Set stores an entry. Already-expired entries are not stored.
func (s *MemoryStore) Set(_ context.Context, key Key, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}
	if entry.TTL() <= 0 {
		return nil
	}

	s.mu.Lock()
	s.entries[key.String()] = entry
	s.mu.Unlock()

	return nil
}

// Delete removes an entry.
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	delete(s.entries, key.String())
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
