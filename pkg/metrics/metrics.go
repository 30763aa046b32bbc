// Package metrics provides the centralized Prometheus metrics registry for
// the scouting client. All metrics are defined in their respective packages
// (client, cache, pagination) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the scouting client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - scout_requests_total{resource, status} (Counter): Total requests by resource and HTTP status
//   - scout_request_duration_seconds{resource} (Histogram): Request duration by resource
//   - scout_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Pagination Metrics (pkg/pagination):
//   - scout_fetch_truncated_total{resource, reason} (Counter): Fetches stopped early, by reason (error, page_cap)
//   - scout_fetch_pages{resource} (Histogram): Pages fetched per paginated fetch
//
// Cache Metrics (pkg/cache):
//   - scout_cache_hits_total{layer} (Counter): Cache hits by layer (memory, redis)
//   - scout_cache_misses_total (Counter): Cache misses
//   - scout_cache_errors_total{operation} (Counter): Cache operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(scout_cache_hits_total[5m])) /
//   (sum(rate(scout_cache_hits_total[5m])) + sum(rate(scout_cache_misses_total[5m])))
//
//   # Truncation Rate by Resource
//   rate(scout_fetch_truncated_total[5m])
//
//   # Request Error Rate
//   rate(scout_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(scout_request_duration_seconds_bucket[5m]))
