package pagination

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for pagination operations.
var (
	scoutFetchTruncatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scout_fetch_truncated_total",
		Help: "Total paginated fetches that stopped early, by resource and reason",
	}, []string{"resource", "reason"})

	scoutFetchPages = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scout_fetch_pages",
		Help:    "Pages fetched per paginated fetch by resource",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	}, []string{"resource"})
)

// Config holds the page loop configuration.
type Config struct {
	// PerPage is the page size requested from the API (default 100).
	PerPage int

	// MaxPages caps the number of page requests regardless of what the API
	// reports (default 100). Must be positive.
	MaxPages int
}

// DefaultConfig returns safe defaults for Fullfield resources.
func DefaultConfig() Config {
	return Config{
		PerPage:  100,
		MaxPages: 100,
	}
}

// Page is one normalized page of results. Envelope parsing happens upstream
// of the loop, so every observed envelope shape arrives here looking the same.
type Page struct {
	Rows        []json.RawMessage
	CurrentPage int
	LastPage    int
}

// PageFetcher fetches a single page of a resource.
type PageFetcher interface {
	FetchPage(ctx context.Context, resource string, params url.Values, page int) (*Page, error)
}

// Result is the outcome of a full paginated fetch. Rows is whatever
// accumulated before termination, in upstream order, without de-duplication.
type Result struct {
	Rows  []json.RawMessage
	Pages int

	// Truncated is true when the loop stopped before the API-reported last
	// page: a failed page request or the page cap.
	Truncated bool

	// Err is the failure reason when a page request failed. Rows fetched
	// before the failure are still present.
	Err error
}

// FetchAll runs the sequential page loop for one resource.
//
// Termination conditions, first one wins:
//   - a page request fails (truncated, reason attached)
//   - a page comes back empty (normal end)
//   - the API reports current_page >= last_page (normal end)
//   - the page cap is reached (truncated)
func FetchAll(ctx context.Context, fetcher PageFetcher, resource string, params url.Values, cfg Config) Result {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 100
	}

	start := time.Now()
	var result Result

	for page := 1; page <= cfg.MaxPages; page++ {
		pageParams := url.Values{}
		for k, vs := range params {
			pageParams[k] = vs
		}
		pageParams.Set("per_page", strconv.Itoa(cfg.PerPage))
		pageParams.Set("page", strconv.Itoa(page))

		p, err := fetcher.FetchPage(ctx, resource, pageParams, page)
		if err != nil {
			log.Warn().
				Err(err).
				Str("resource", resource).
				Int("page", page).
				Int("rows", len(result.Rows)).
				Msg("Page fetch failed - returning partial results")
			scoutFetchTruncatedTotal.WithLabelValues(resource, "error").Inc()
			result.Truncated = true
			result.Err = err
			break
		}

		if len(p.Rows) == 0 {
			break
		}

		result.Rows = append(result.Rows, p.Rows...)
		result.Pages++

		if p.CurrentPage >= p.LastPage {
			break
		}

		if page == cfg.MaxPages {
			log.Warn().
				Str("resource", resource).
				Int("max_pages", cfg.MaxPages).
				Int("last_page", p.LastPage).
				Msg("Page cap reached - returning partial results")
			scoutFetchTruncatedTotal.WithLabelValues(resource, "page_cap").Inc()
			result.Truncated = true
		}
	}

	scoutFetchPages.WithLabelValues(resource).Observe(float64(result.Pages))

	log.Debug().
		Str("resource", resource).
		Int("pages", result.Pages).
		Int("rows", len(result.Rows)).
		Bool("truncated", result.Truncated).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return result
}
