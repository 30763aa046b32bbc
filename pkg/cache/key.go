package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key identifies a memoized fetch by the full set of its input parameters.
type Key struct {
	// Resource is the Fullfield resource path
	// (e.g., "/competition/3f2a/boxscore").
	Resource string

	// Params are the request parameters that shape the result
	// (filters; not the page number, which the pagination loop owns).
	Params url.Values
}

// String generates a deterministic cache key string.
// Format: scout:resource:param1=val1:param2=val2
//
// Example:
//
//	scout:competition/3f2a/boxscore:filter[schedule_uuid]=9c01:per_page=100
func (k Key) String() string {
	parts := []string{"scout"}

	resource := strings.Trim(k.Resource, "/")
	if resource != "" {
		parts = append(parts, resource)
	}

	// Params sorted for determinism
	if len(k.Params) > 0 {
		keys := make([]string, 0, len(k.Params))
		for key := range k.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Params.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
