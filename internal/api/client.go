package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Defaults applied by New.
const (
	DefaultBaseURL   = "https://sendly.live/api"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "sendly-go/0.1.2"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the maximum number of retry attempts.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryDelay sets the base delay for exponential backoff.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retry.BaseDelay = delay
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry: DefaultRetryConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// Close releases the client's idle connections. The client must not be
// used after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Query holds query parameters prior to serialization. Nil and empty
// values are dropped, slice values repeat the key, and everything else
// is stringified.
type Query map[string]any

// Encode serializes the query into URL-encoded form with sorted keys.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		switch v := q[key].(type) {
		case nil:
		case string:
			if v != "" {
				values.Add(key, v)
			}
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

// Post sends a JSON body and decodes the JSON response into result.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, nil, result)
}

// Get issues a GET with the given query parameters and decodes the
// JSON response into result.
func (c *Client) Get(ctx context.Context, path string, query Query, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, query, result)
}

// do runs the retry loop for one logical request. Every exit path
// returns either a decoded result or exactly one typed error carrying
// the last observed failure.
func (c *Client) do(ctx context.Context, method, path string, body any, query Query, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Err: fmt.Errorf("marshal request body: %w", err)}
		}
		payload = data
	}

	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return &NetworkError{Err: fmt.Errorf("create request: %w", err), URL: endpoint, Attempt: attempt}
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return &NetworkError{Err: ctx.Err(), URL: endpoint, Attempt: attempt}
			}
			if attempt < c.retry.MaxRetries {
				if waitErr := c.retry.Wait(ctx, attempt, 0); waitErr != nil {
					return &NetworkError{Err: waitErr, URL: endpoint, Attempt: attempt}
				}
				continue
			}
			return &NetworkError{Err: transportFailure(err), URL: endpoint, Attempt: attempt}
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			if attempt < c.retry.MaxRetries {
				if waitErr := c.retry.Wait(ctx, attempt, 0); waitErr != nil {
					return &NetworkError{Err: waitErr, URL: endpoint, Attempt: attempt}
				}
				continue
			}
			return &NetworkError{Err: transportFailure(readErr), URL: endpoint, Attempt: attempt}
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if result == nil {
				return nil
			}
			if err := json.Unmarshal(data, result); err != nil {
				// Not retried: the server accepted the request, so a
				// second attempt could double-send.
				return &APIError{
					StatusCode: resp.StatusCode,
					Code:       "invalid_response",
					Message:    fmt.Sprintf("Invalid JSON in response: %v", err),
				}
			}
			return nil
		}

		errBody := parseErrorBody(data, resp.StatusCode)
		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			if waitErr := c.retry.Wait(ctx, attempt, errBody.RetryAfter); waitErr != nil {
				return &NetworkError{Err: waitErr, URL: endpoint, Attempt: attempt}
			}
			continue
		}
		return terminalError(resp.StatusCode, errBody)
	}
}

// parseErrorBody decodes a non-2xx body, synthesizing an unknown-error
// shape when the body is not valid JSON.
func parseErrorBody(data []byte, statusCode int) errorResponse {
	var parsed errorResponse
	if err := json.Unmarshal(data, &parsed); err == nil {
		return parsed
	}
	message := strings.TrimSpace(string(data))
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return errorResponse{Error: "unknown", Message: message}
}

// terminalError maps a non-retryable (or retry-exhausted) status to
// its typed error.
func terminalError(statusCode int, body errorResponse) error {
	switch statusCode {
	case http.StatusBadRequest:
		return &ValidationError{Message: orDefault(body.Message, "Validation error")}
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: orDefault(body.Message, "Authentication failed")}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Message:    orDefault(body.Message, "Rate limit exceeded"),
			RetryAfter: body.RetryAfter,
		}
	default:
		message := body.Message
		if message == "" {
			message = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
		}
		return &APIError{StatusCode: statusCode, Code: body.Error, Message: message}
	}
}

// transportFailure labels a transport error as a timeout or a
// connection failure.
func transportFailure(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("request timed out: %w", err)
	}
	return fmt.Errorf("connection error: %w", err)
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
