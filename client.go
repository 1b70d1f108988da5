package sendly

import (
	"os"

	"github.com/sendly/sendly-go/internal/api"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.2"

// EnvAPIKey is the environment variable consulted when New is called
// with an empty API key.
const EnvAPIKey = "SENDLY_API_KEY"

// Client is the main Sendly client for sending SMS/MMS messages.
type Client struct {
	apiClient *api.Client

	// SMS sends messages and reads message history.
	SMS *SMS
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithUserAgent(cfg.userAgent),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries > 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if cfg.retryDelay > 0 {
		apiOpts = append(apiOpts, api.WithRetryDelay(cfg.retryDelay))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// New creates a new Sendly client. An empty apiKey falls back to the
// SENDLY_API_KEY environment variable; a missing or malformed key
// fails before any transport is constructed.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !isValidAPIKey(apiKey) {
		return nil, &ValidationError{
			Message: "invalid API key format, expected sl_test_* or sl_live_*",
		}
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: "sendly-go/" + Version,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{apiClient: apiClient}
	c.SMS = &SMS{client: apiClient}
	return c, nil
}

// Close releases the client's network resources. It is safe to defer
// immediately after New and to call on every exit path.
func (c *Client) Close() {
	c.apiClient.Close()
}
