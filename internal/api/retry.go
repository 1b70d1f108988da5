package api

import (
	"context"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the
	// initial request.
	MaxRetries int
	// BaseDelay is the delay before the first retry. Subsequent
	// retries double it.
	BaseDelay time.Duration
	// RetryableOn determines if a status code should trigger a retry.
	RetryableOn func(statusCode int) bool
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		RetryableOn: func(statusCode int) bool {
			return statusCode == 429 || (statusCode >= 500 && statusCode < 600)
		},
	}
}

// ShouldRetry determines if a request should be retried.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if attempt >= r.MaxRetries {
		return false
	}
	return r.RetryableOn(statusCode)
}

// Delay calculates the delay before the next retry attempt. A
// server-supplied retry-after hint (in seconds) is used verbatim;
// otherwise the delay is BaseDelay doubled per attempt.
func (r *RetryConfig) Delay(attempt int, retryAfter int) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	return r.BaseDelay * time.Duration(1<<uint(attempt))
}

// Wait blocks for the computed delay or until the context is done.
func (r *RetryConfig) Wait(ctx context.Context, attempt int, retryAfter int) error {
	timer := time.NewTimer(r.Delay(attempt, retryAfter))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
