// Package tmdb implements the remote catalog provider against the TMDB
// v3 API. Any non-success response or undecodable payload is a single
// undifferentiated error; callers never retry.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/okatz/marquee/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "marquee/0.1"
)

// Client implements domain.CatalogProvider for TMDB.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

var _ domain.CatalogProvider = (*Client)(nil)

// NewClient creates a TMDB API client.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SearchMovies runs a free-text movie search.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	values := url.Values{}
	values.Set("query", query)

	var payload movieListResponse
	if err := c.get(ctx, "/search/movie", values, &payload); err != nil {
		return nil, err
	}
	return mapMovies(payload.Results), nil
}

// Popular returns the current popular movies page.
func (c *Client) Popular(ctx context.Context) ([]domain.CatalogItem, error) {
	var payload movieListResponse
	if err := c.get(ctx, "/movie/popular", nil, &payload); err != nil {
		return nil, err
	}
	return mapMovies(payload.Results), nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	if values == nil {
		values = url.Values{}
	}
	values.Set("api_key", c.apiKey)
	values.Set("language", "en-US")
	values.Set("page", "1")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("provider %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
