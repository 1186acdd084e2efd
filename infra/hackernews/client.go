package hackernews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CrestNiraj12/terminalhn/domain"
)

const (
	DefaultAPIURL    = "https://hacker-news.firebaseio.com/"
	DefaultSiteURL   = "https://news.ycombinator.com/"
	DefaultUserAgent = "terminalhn"
	DefaultTimeout   = 10 * time.Second
)

// Client is a thin HTTP wrapper for the read-only Hacker News API.
// It handles base URL construction and the User-Agent header.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient creates an API client. A zero timeout uses DefaultTimeout.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request for an API path such as "/v0/item/1.json".
// Every failure is wrapped with domain.ErrFetch.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrFetch, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request to %s: %v", domain.ErrFetch, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrFetch, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s returned %d", domain.ErrFetch, path, resp.StatusCode)
	}

	return data, nil
}
