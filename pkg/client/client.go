// Package client provides the core Fullfield HTTP client with bearer-token
// authentication, request pacing, per-request timeouts, and error handling.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Prometheus metrics for Fullfield client operations.
var (
	scoutRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scout_requests_total",
		Help: "Total Fullfield requests by resource and status",
	}, []string{"resource", "status"})

	scoutRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scout_request_duration_seconds",
		Help:    "Fullfield request duration in seconds by resource",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"resource"})

	scoutErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scout_errors_total",
		Help: "Total Fullfield errors by class",
	}, []string{"class"})
)

// DefaultBaseURL is the production Fullfield API host.
const DefaultBaseURL = "https://api.fullfield.info/v1"

// Client is the Fullfield HTTP client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the Fullfield API (defaults to DefaultBaseURL).
	BaseURL string

	// Token is the bearer token sent on every request (REQUIRED).
	Token string

	// Timeout applies to each HTTP request.
	Timeout time.Duration

	// RequestsPerMinute paces upstream calls. Zero disables pacing.
	RequestsPerMinute int

	// HTTPClient overrides the default client (for testing).
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(token string) Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Token:             token,
		Timeout:           15 * time.Second,
		RequestsPerMinute: 120,
	}
}

// New creates a new Fullfield client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("api token is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		rps := float64(cfg.RequestsPerMinute) / 60.0
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	logger := log.With().Str("component", "fullfield-client").Logger()

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		limiter:    limiter,
		logger:     logger,
	}, nil
}

// Get performs a GET request against a Fullfield resource path and returns
// the raw response body. A non-2xx status or transport failure comes back as
// an *APIError; callers at the pagination layer absorb it into a truncated
// result rather than propagating it to the presentation layer.
func (c *Client) Get(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	startTime := time.Now()
	defer func() {
		scoutRequestDuration.WithLabelValues(resource).Observe(time.Since(startTime).Seconds())
	}()

	u := c.baseURL + resource
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("resource", resource).
		Msg("Executing Fullfield request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("resource", resource).Msg("HTTP request failed")
		scoutErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		scoutRequestsTotal.WithLabelValues(resource, "network_error").Inc()
		return nil, &APIError{
			ErrorClass: ErrorClassNetwork,
			Message:    "request failed",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		scoutErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassNetwork,
			Message:    "read response body",
			Err:        err,
		}
	}

	scoutRequestsTotal.WithLabelValues(resource, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errClass := classifyStatus(resp.StatusCode)
		scoutErrorsTotal.WithLabelValues(string(errClass)).Inc()

		c.logger.Warn().
			Str("resource", resource).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Fullfield request error")

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Message:    resp.Status,
		}
	}

	return body, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
