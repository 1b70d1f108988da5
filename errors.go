package sendly

import (
	"errors"
	"fmt"

	"github.com/sendly/sendly-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided and
	// none is found in the environment.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is rejected by the
	// server.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// SendlyError is implemented by all SDK errors.
type SendlyError interface {
	error
	SendlyError() // marker method
}

// ValidationError is returned for requests rejected before or by the
// API for invalid parameters. Client-side validation failures never
// reach the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SendlyError implements the SendlyError interface.
func (e *ValidationError) SendlyError() {}

// AuthenticationError is returned when the API key is invalid or
// expired. It is never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// SendlyError implements the SendlyError interface.
func (e *AuthenticationError) SendlyError() {}

// RateLimitError is returned when rate limits remain exceeded after
// all retries. RetryAfter carries the server's hint in seconds, zero
// when the server gave none.
type RateLimitError struct {
	Message    string
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %ds)", e.Message, e.RetryAfter)
	}
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// SendlyError implements the SendlyError interface.
func (e *RateLimitError) SendlyError() {}

// APIError is returned for HTTP errors that are not validation,
// authentication, or rate-limit failures. Code is the machine code
// reported by the server, when present.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// SendlyError implements the SendlyError interface.
func (e *APIError) SendlyError() {}

// NetworkError is returned for transport-level failures: timeouts,
// connection errors, or a cancelled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SendlyError implements the SendlyError interface.
func (e *NetworkError) SendlyError() {}

// ErrorCode returns the machine-readable code for an SDK error:
// "validation_error", "authentication_error", "rate_limit_exceeded",
// "network_error", or for API errors the server's own code. It returns
// an empty string for non-SDK errors.
func ErrorCode(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return "validation_error"
	}
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return "authentication_error"
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return "rate_limit_exceeded"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code != "" {
			return apiErr.Code
		}
		return "api_error"
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "network_error"
	}
	return ""
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		return &ValidationError{Message: validationErr.Message}
	}

	var authErr *api.AuthenticationError
	if errors.As(err, &authErr) {
		return &AuthenticationError{Message: authErr.Message}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{Message: rateErr.Message, RetryAfter: rateErr.RetryAfter}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err}
	}

	return err
}
