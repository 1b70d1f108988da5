package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.BaseDelay != time.Second {
		t.Errorf("BaseDelay = %v, want 1s", cfg.BaseDelay)
	}
	if cfg.RetryableOn == nil {
		t.Error("RetryableOn is nil")
	}
}

func TestRetryConfig_RetryableStatuses(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		statusCode int
		expected   bool
	}{
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
		{599, true},
		{400, false},
		{401, false},
		{402, false},
		{404, false},
		{408, false},
		{200, false},
		{600, false},
	}

	for _, tt := range tests {
		if got := cfg.RetryableOn(tt.statusCode); got != tt.expected {
			t.Errorf("RetryableOn(%d) = %v, want %v", tt.statusCode, got, tt.expected)
		}
	}
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		name       string
		attempt    int
		statusCode int
		expected   bool
	}{
		{"first attempt, retryable", 0, 503, true},
		{"second attempt, retryable", 1, 503, true},
		{"third attempt, retryable", 2, 503, true},
		{"max attempts reached", 3, 503, false},
		{"over max attempts", 4, 503, false},
		{"non-retryable 400", 0, 400, false},
		{"non-retryable 401", 0, 401, false},
		{"retryable 429", 0, 429, true},
		{"retryable 500", 0, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cfg.ShouldRetry(tt.attempt, tt.statusCode)
			if result != tt.expected {
				t.Errorf("ShouldRetry(%d, %d) = %v, want %v",
					tt.attempt, tt.statusCode, result, tt.expected)
			}
		})
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{BaseDelay: time.Second}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, time.Second},     // 1 * 2^0 = 1s
		{1, 2 * time.Second}, // 1 * 2^1 = 2s
		{2, 4 * time.Second}, // 1 * 2^2 = 4s
		{3, 8 * time.Second}, // 1 * 2^3 = 8s
	}

	for _, tt := range tests {
		delay := cfg.Delay(tt.attempt, 0)
		if delay != tt.expected {
			t.Errorf("Delay(%d, 0) = %v, want %v", tt.attempt, delay, tt.expected)
		}
	}
}

func TestRetryConfig_Delay_RetryAfterWins(t *testing.T) {
	cfg := &RetryConfig{BaseDelay: time.Second}

	// A server-supplied retry-after overrides backoff on every attempt.
	for attempt := 0; attempt < 5; attempt++ {
		delay := cfg.Delay(attempt, 5)
		if delay != 5*time.Second {
			t.Errorf("Delay(%d, 5) = %v, want 5s", attempt, delay)
		}
	}
}

func TestRetryConfig_Wait_ContextCancelled(t *testing.T) {
	cfg := &RetryConfig{BaseDelay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := cfg.Wait(ctx, 0, 0)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Wait blocked for %v despite cancelled context", elapsed)
	}
}

func TestRetryConfig_Wait_Completes(t *testing.T) {
	cfg := &RetryConfig{BaseDelay: time.Millisecond}

	if err := cfg.Wait(context.Background(), 0, 0); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
