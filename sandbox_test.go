package sendly

import (
	"testing"
	"time"
)

func TestIsMagicNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{MagicSuccessInstant, true},
		{MagicErrorRateLimit, true},
		{MagicWebhookError500, true},
		{"+14155552671", false},
		{"15550001234", false}, // missing plus
		{"", false},
	}
	for _, tt := range tests {
		if got := IsMagicNumber(tt.number); got != tt.want {
			t.Errorf("IsMagicNumber(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestMagicNumberInfoFor(t *testing.T) {
	info, ok := MagicNumberInfoFor(MagicErrorRateLimit)
	if !ok {
		t.Fatal("MagicNumberInfoFor(MagicErrorRateLimit) not found")
	}
	if info.Category != MagicCategoryError {
		t.Errorf("Category = %s, want %s", info.Category, MagicCategoryError)
	}
	if info.HTTPStatus != 429 {
		t.Errorf("HTTPStatus = %d, want 429", info.HTTPStatus)
	}
	if info.ErrorCode != "rate_limit_exceeded" {
		t.Errorf("ErrorCode = %s, want rate_limit_exceeded", info.ErrorCode)
	}

	info, ok = MagicNumberInfoFor(MagicDelay30s)
	if !ok {
		t.Fatal("MagicNumberInfoFor(MagicDelay30s) not found")
	}
	if info.Delay != 30*time.Second {
		t.Errorf("Delay = %v, want 30s", info.Delay)
	}
	if info.HTTPStatus != 0 || info.ErrorCode != "" {
		t.Errorf("delay number should have no error fields, got %+v", info)
	}

	if _, ok := MagicNumberInfoFor("+19998887777"); ok {
		t.Error("MagicNumberInfoFor should miss for a regular number")
	}
}

func TestMagicNumbersByCategory(t *testing.T) {
	wantErrors := []string{
		MagicErrorInvalidNumber,
		MagicErrorCarrierRejection,
		MagicErrorRateLimit,
		MagicErrorTimeout,
		MagicErrorInsufficientBalance,
	}
	got := MagicNumbersByCategory(MagicCategoryError)
	if len(got) != len(wantErrors) {
		t.Fatalf("len = %d, want %d", len(got), len(wantErrors))
	}
	for i, number := range wantErrors {
		if got[i] != number {
			t.Errorf("errors[%d] = %s, want %s", i, got[i], number)
		}
	}

	if got := MagicNumbersByCategory("nonsense"); got != nil {
		t.Errorf("unknown category = %v, want nil", got)
	}
}

func TestErrorAndSuccessMagicNumbers(t *testing.T) {
	if got := len(ErrorMagicNumbers()); got != 5 {
		t.Errorf("len(ErrorMagicNumbers()) = %d, want 5", got)
	}
	success := SuccessMagicNumbers()
	if len(success) != 3 {
		t.Fatalf("len(SuccessMagicNumbers()) = %d, want 3", len(success))
	}
	if success[0] != MagicSuccessInstant {
		t.Errorf("success[0] = %s, want %s", success[0], MagicSuccessInstant)
	}
}

func TestMagicNumbersAreValidPhoneNumbers(t *testing.T) {
	for _, info := range magicNumbers {
		if !isValidPhoneNumber(info.Number) {
			t.Errorf("magic number %s is not E.164", info.Number)
		}
	}
}
