package sendly

import (
	"net/http"
	"time"
)

const defaultBaseURL = "https://sendly.live/api"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls. Default: 3.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryDelay sets the base delay for exponential backoff between
// retries. Default: 1 second.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}
