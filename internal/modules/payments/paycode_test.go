package payments

import "testing"

func TestFormatPaymentCode(t *testing.T) {
	if got := FormatPaymentCode(42); got != "DH42" {
		t.Fatalf("FormatPaymentCode(42) = %q, want %q", got, "DH42")
	}
}

func TestParsePaymentCode(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantID int64
		wantOK bool
	}{
		{"bare code", "DH42", 42, true},
		{"code inside transfer note", "Thanh toan don hang DH1234 cam on", 1234, true},
		{"trailing text glued to digits", "DH77abc", 77, true},
		{"last occurrence wins", "DH1 note DH99", 99, true},
		{"no prefix", "order 42", 0, false},
		{"prefix without digits", "DHxx", 0, false},
		{"empty", "", 0, false},
		{"zero id rejected", "DH0", 0, false},
		{"lowercase prefix rejected", "dh42", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParsePaymentCode(tt.in)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("ParsePaymentCode(%q) = (%d, %v), want (%d, %v)",
					tt.in, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolvePaymentID(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		content string
		wantID  int64
		wantOK  bool
	}{
		{"code field wins", "DH5", "DH9", 5, true},
		{"falls back to content", "", "pay DH9", 9, true},
		{"garbage code falls back to content", "ref-001", "DH9", 9, true},
		{"neither resolvable", "ref-001", "thanks", 0, false},
		{"both empty", "", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolvePaymentID(tt.code, tt.content)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("ResolvePaymentID(%q, %q) = (%d, %v), want (%d, %v)",
					tt.code, tt.content, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
