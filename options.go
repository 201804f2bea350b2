package smartlead

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Option func(*Client)

// WithBaseURL points the client at a different host, e.g. a staging
// deployment or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok && timeout > 0 {
			httpClient.Timeout = timeout
		}
	}
}

// WithLogger enables per-request debug logging. The logger is never
// handed the API key; only method, path, status and latency are logged.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}
