package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key was rejected by the server.
	ErrUnauthorized = errors.New("authentication failed")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ValidationError represents a 400 response from the API.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError represents a 401 response from the API.
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

// RateLimitError represents a 429 response that survived all retries.
// RetryAfter is the server's hint in seconds, zero when absent.
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

// APIError represents any other HTTP error from the Sendly API,
// including a 2xx response whose body is not valid JSON.
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

// NetworkError represents a transport-level failure: a timeout, a
// connection error, or a cancelled context.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
