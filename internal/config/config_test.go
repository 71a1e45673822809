package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PAYMENT_CANCEL_DELAY", "")

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.PaymentCancelDelay != 10*time.Second {
		t.Errorf("PaymentCancelDelay = %v, want 10s", cfg.PaymentCancelDelay)
	}
}

func TestCancelDelayFormats(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"45", 45 * time.Second},
		{"bogus", 10 * time.Second},
		{"-5", 10 * time.Second},
	}
	for _, tt := range tests {
		t.Setenv("PAYMENT_CANCEL_DELAY", tt.in)
		if got := Load().PaymentCancelDelay; got != tt.want {
			t.Errorf("PAYMENT_CANCEL_DELAY=%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
