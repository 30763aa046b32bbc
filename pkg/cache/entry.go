package cache

import (
	"time"
)

// Entry represents a memoized fetch result.
type Entry struct {
	// Data is the JSON-encoded result payload.
	Data []byte `json:"data"`

	// Truncated records whether the fetch that produced this entry stopped
	// at its page cap. Cached truncated results stay truncated until the
	// entry expires.
	Truncated bool `json:"truncated"`

	// Expires is when the entry becomes stale.
	Expires time.Time `json:"expires"`

	// CachedAt is when the entry was stored.
	CachedAt time.Time `json:"cached_at"`
}

// NewEntry creates an entry expiring ttl from now.
func NewEntry(data []byte, truncated bool, ttl time.Duration) *Entry {
	now := time.Now()
	return &Entry{
		Data:      data,
		Truncated: truncated,
		Expires:   now.Add(ttl),
		CachedAt:  now,
	}
}

// IsExpired returns true if the entry has expired.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
