package recwell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher defines the interface for fetching the raw occupancy feed.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client fetches the RecWell occupancy feed over HTTP.
type Client struct {
	feedURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultFeedURL   = "https://umd-gym-data.herokuapp.com/gym.json"
	defaultUserAgent = "umdgym/0.1"
	requestTimeout   = 5 * time.Second
)

// DefaultFeedURL returns the built-in feed endpoint.
func DefaultFeedURL() string {
	return defaultFeedURL
}

// NewClient builds a Client for the provided feed URL. An empty value uses
// the built-in endpoint.
func NewClient(feedURL string) (*Client, error) {
	parsed, err := parseFeedURL(feedURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		feedURL: parsed,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch performs one GET against the feed and returns the raw body bytes.
// Transport failures, a malformed endpoint, and non-2xx statuses all come
// back as plain errors; callers treat any of them as the feed being
// unreachable. There are no retries.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	requestID := uuid.NewString()
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("feed request failed", "request_id", requestID, "err", err)
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		slog.Debug("feed request rejected", "request_id", requestID, "status", resp.StatusCode)
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	slog.Debug("feed request done",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(started),
	)
	return body, nil
}

func parseFeedURL(feedURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(feedURL)
	if trimmed == "" {
		trimmed = defaultFeedURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed_url %q: %w", feedURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse feed_url %q: missing host", feedURL)
	}
	return u, nil
}
