package cache

import (
	"context"
	"errors"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Store is the memoization backend injected into the fetch layer.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves an entry by key.
	// Returns ErrCacheMiss if the key doesn't exist or the entry is expired.
	Get(ctx context.Context, key Key) (*Entry, error)

	// Set stores an entry with a TTL derived from the entry's Expires field.
	Set(ctx context.Context, key Key, entry *Entry) error

	// Delete removes an entry.
	Delete(ctx context.Context, key Key) error
}
