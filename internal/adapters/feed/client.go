// Package feed retrieves leaderboard payloads from the upstream API and
// turns them into immutable snapshots.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default client configuration constants.
const (
	defaultFetchTimeout = 5 * time.Second
)

// ClientOption applies a configuration option to the Client.
type ClientOption func(*Client)

// WithTimeout sets the per-fetch timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client fetches raw payload bytes from the upstream endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for the given payload URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs one GET against the payload endpoint, honoring ctx for
// cancellation.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return body, nil
}
