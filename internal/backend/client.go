// Package backend is the typed HTTP client for the pickem backend API.
//
// All data calls return a Result envelope rather than an error, so every
// page-level consumer can use a single uniform check (if !res.OK) instead of
// error handling. Idempotent GETs are served from a short-lived response cache,
// and server errors (5xx) are retried exactly once before being surfaced.
package backend

import (
	"net/http"
	"time"
)

const (
	// DefaultCacheTTL is how long successful GET responses are reused.
	DefaultCacheTTL = 60 * time.Second

	requestTimeout = 10 * time.Second
)

// Client handles communication with the pickem backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *responseCache
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	ttl        time.Duration
	now        func() time.Time
}

// WithHTTPClient replaces the default http.Client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *clientOptions) { o.ttl = ttl }
}

// WithClock injects the clock used for cache expiry. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) { o.now = now }
}

func NewClient(baseURL string, opts ...Option) *Client {
	options := clientOptions{
		httpClient: &http.Client{Timeout: requestTimeout},
		ttl:        DefaultCacheTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: options.httpClient,
		cache:      newResponseCache(options.ttl, options.now),
	}
}

// ClearCache empties the response cache, forcing the next GET for any URL to
// hit the network.
func (c *Client) ClearCache() {
	c.cache.clear()
}
