//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	sendly "github.com/sendly/sendly-go"
)

var apiKey string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("SENDLY_API_KEY")
	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: SENDLY_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T) *sendly.Client {
	t.Helper()

	opts := []sendly.Option{
		sendly.WithTimeout(30 * time.Second),
	}
	if baseURL := os.Getenv("SENDLY_URL"); baseURL != "" {
		opts = append(opts, sendly.WithBaseURL(baseURL))
	}

	client, err := sendly.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_SendToMagicSuccess(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	msg, err := client.SMS.Send(ctx, &sendly.SendMessageParams{
		To:   sendly.MagicSuccessInstant,
		Text: "integration test",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	t.Logf("Sent message: %s", msg.ID)

	if msg.ID == "" {
		t.Error("ID is empty")
	}
	if msg.Segments < 1 {
		t.Errorf("Segments = %d, want >= 1", msg.Segments)
	}
	if msg.Direction != "outbound" {
		t.Errorf("Direction = %q, want outbound", msg.Direction)
	}
}

func TestIntegration_SendToMagicInvalidNumber(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.SMS.Send(ctx, &sendly.SendMessageParams{
		To:   sendly.MagicErrorInvalidNumber,
		Text: "integration test",
	})
	var validationErr *sendly.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %T (%v), want *sendly.ValidationError", err, err)
	}
}

func TestIntegration_SendToMagicInsufficientBalance(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.SMS.Send(ctx, &sendly.SendMessageParams{
		To:   sendly.MagicErrorInsufficientBalance,
		Text: "integration test",
	})
	var apiErr *sendly.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T (%v), want *sendly.APIError", err, err)
	}
	if apiErr.StatusCode != 402 {
		t.Errorf("StatusCode = %d, want 402", apiErr.StatusCode)
	}
}

func TestIntegration_ListMessages(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	list, err := client.SMS.List(ctx, &sendly.ListMessagesParams{Limit: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Listed %d of %d messages", len(list.Messages), list.Pagination.Total)

	if len(list.Messages) > 5 {
		t.Errorf("len(Messages) = %d, want <= 5", len(list.Messages))
	}
}

func TestIntegration_Stats(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	stats, err := client.SMS.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	t.Logf("Stats: %v", stats)

	limits, err := client.SMS.RateLimitStatus(ctx)
	if err != nil {
		t.Fatalf("RateLimitStatus() error = %v", err)
	}
	t.Logf("Rate limits: %v", limits)
}
