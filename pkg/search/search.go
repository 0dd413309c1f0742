// Package search executes web-search queries against the Google Custom
// Search JSON API, with bounded exponential backoff on rate limits and
// optional response caching.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/codeGROOVE-dev/bizlocator/pkg/qcache"
)

// Result is one ranked item returned by the search provider.
type Result struct {
	Title   string
	Snippet string
	Link    string
}

// Searcher executes one query and returns ranked results. Zero results
// is a successful empty slice; errors signal transport failure only.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// ErrMissingCredentials is returned by New when no API key or search
// engine ID is available.
var ErrMissingCredentials = errors.New("missing search API credentials")

// HTTPError represents a non-200 response from the search provider.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"
	resultsPerPage = 10
	maxAttempts    = 3
	baseRetryDelay = time.Second
)

// Client queries the Google Custom Search JSON API.
type Client struct {
	httpClient *http.Client
	cache      qcache.Cacher
	logger     *slog.Logger
	baseURL    string
	apiKey     string
	engineID   string
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cache      qcache.Cacher
	logger     *slog.Logger
	baseURL    string
	apiKey     string
	engineID   string
	retryDelay time.Duration
}

// WithCredentials sets the API key and search engine ID explicitly,
// overriding the environment.
func WithCredentials(apiKey, engineID string) Option {
	return func(c *config) {
		c.apiKey = apiKey
		c.engineID = engineID
	}
}

// WithCache sets the query-response cache.
func WithCache(cache qcache.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithBaseURL overrides the provider endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *config) { c.baseURL = baseURL }
}

// WithRetryDelay overrides the initial backoff delay. Used by tests.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) { c.retryDelay = d }
}

// New creates a search client. Credentials come from WithCredentials or
// the environment: GOOGLE_SEARCH_API_KEY (or GOOGLE_API_KEY) and
// GOOGLE_SEARCH_ENGINE_ID (or GOOGLE_CSE_CX).
func New(opts ...Option) (*Client, error) {
	cfg := &config{
		logger:     slog.Default(),
		baseURL:    defaultBaseURL,
		retryDelay: baseRetryDelay,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = firstEnv("GOOGLE_SEARCH_API_KEY", "GOOGLE_API_KEY")
	}
	if cfg.engineID == "" {
		cfg.engineID = firstEnv("GOOGLE_SEARCH_ENGINE_ID", "GOOGLE_CSE_CX")
	}
	if cfg.apiKey == "" || cfg.engineID == "" {
		return nil, fmt.Errorf("%w: set GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_ENGINE_ID or use WithCredentials",
			ErrMissingCredentials)
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cfg.cache,
		logger:     cfg.logger,
		baseURL:    cfg.baseURL,
		apiKey:     cfg.apiKey,
		engineID:   cfg.engineID,
		retryDelay: cfg.retryDelay,
	}, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Search issues one query and returns its ranked results. HTTP 429 and
// network failures are retried with doubling delays across a fixed
// attempt budget; other HTTP errors fail immediately.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(resultsPerPage))
	searchURL := c.baseURL + "?" + params.Encode()

	var body []byte
	var err error
	if c.cache != nil {
		body, err = c.cache.GetSet(ctx, qcache.Key(c.engineID+"|"+query), func(ctx context.Context) ([]byte, error) {
			c.logger.DebugContext(ctx, "cache miss", "query", query)
			return c.fetch(ctx, searchURL)
		}, c.cache.TTL())
	} else {
		body, err = c.fetch(ctx, searchURL)
	}
	if err != nil {
		return nil, err
	}

	return parseResults(body)
}

func (c *Client) fetch(ctx context.Context, searchURL string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, http.NoBody)
			if err != nil {
				return nil, err
			}
			req.Header.Set("Accept", "application/json")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, err
			}
			defer func() { _ = resp.Body.Close() }() //nolint:errcheck // error ignored intentionally

			if resp.StatusCode != http.StatusOK {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: searchURL}
			}

			return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(c.retryDelay),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			c.logger.DebugContext(ctx, "retrying search request", "attempt", n+1, "error", err)
		}),
	)
}

// isRetryableError returns true for HTTP 429 and transport-level
// failures. All other HTTP statuses are permanent for the query.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

func parseResults(body []byte) ([]Result, error) {
	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]Result, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, Result{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}
	return results, nil
}
