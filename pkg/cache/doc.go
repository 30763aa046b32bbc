// Package cache provides time-bounded memoization for Fullfield fetch results.
//
// Fetch operations are memoized per full parameter set for a bounded window
// (5-10 minutes depending on resource), so repeated dashboard interactions do
// not hammer the upstream API. The cache is an explicit dependency injected
// into the fetch layer, not ambient state:
//
//   - Store is the backend interface (Get/Set/Delete)
//   - MemoryStore keeps entries in-process (single instance)
//   - RedisStore shares entries across instances and user sessions
//   - Deterministic key generation from resource path + parameters
//   - Prometheus metrics for observability
//
// # Basic Usage
//
//	store := cache.NewMemoryStore()
//
//	key := cache.Key{
//		Resource: "/competition/3f2a/boxscore",
//		Params:   url.Values{"per_page": []string{"100"}},
//	}
//
//	entry, err := store.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// fetch from upstream, then:
//		_ = store.Set(ctx, key, cache.NewEntry(data, false, 5*time.Minute))
//	}
//
// # Concurrency
//
// Both stores are safe for concurrent use. Concurrent misses on the same key
// may each trigger an upstream fetch; last write wins, which is acceptable
// because fetches are idempotent reads.
//
// # Metrics
//
//   - scout_cache_hits_total{layer} - Cache hits by backend
//   - scout_cache_misses_total - Cache misses
//   - scout_cache_errors_total{operation} - Cache operation errors
package cache
