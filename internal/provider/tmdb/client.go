package tmdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmcdole/cinefind/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "cinefind/1.0"

	discoverPath = "/discover/movie"
	searchPath   = "/search/movie"

	maxBodySize = 4 << 20
)

// Client implements domain.MovieProvider for TMDB-compatible APIs
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new provider client
func NewClient(baseURL, token string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the popular-movies listing for an empty query, or the
// title search results otherwise. Results keep provider order.
func (c *Client) Fetch(ctx context.Context, query string) ([]domain.Movie, error) {
	path, params := endpointFor(query)

	body, err := c.doRequest(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("provider JSON parse error", "error", err, "bodyLen", len(body))
		return nil, &domain.TransportError{StatusCode: http.StatusOK, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if resp.failed() {
		c.logger.Warn("provider reported failure", "message", resp.failureMessage(), "status_code", resp.StatusCode)
		return nil, &domain.ProviderError{Message: resp.failureMessage()}
	}

	return MapMovies(resp.Results), nil
}

// endpointFor selects the discover or search endpoint for a query
func endpointFor(query string) (string, url.Values) {
	if query == "" {
		return discoverPath, url.Values{"sort_by": {"popularity.desc"}}
	}
	return searchPath, url.Values{"query": {query}}
}

// encodeQuery encodes params with %20 for spaces, matching encodeURIComponent
// rather than the form encoding used by url.Values.Encode.
func encodeQuery(params url.Values) string {
	return strings.ReplaceAll(params.Encode(), "+", "%20")
}

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL = reqURL + "?" + encodeQuery(params)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("provider request", "path", path, "query", params.Get("query"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("provider request failed", "error", err)
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("provider request error", "status", resp.StatusCode, "body", truncate(string(body), 256))
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
