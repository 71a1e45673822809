package orders

import (
	"errors"
	"testing"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		StatusPendingPayment, StatusPendingPickup, StatusPendingDelivery,
		StatusDelivered, StatusReturned, StatusCancelled,
	} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending_payment", "SHIPPED", "DONE"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		action  string
		want    string
		wantErr bool
	}{
		{"ship from pickup", StatusPendingPickup, "ship", StatusPendingDelivery, false},
		{"deliver from delivery", StatusPendingDelivery, "deliver", StatusDelivered, false},
		{"return from delivered", StatusDelivered, "return", StatusReturned, false},
		{"ship from unpaid", StatusPendingPayment, "ship", "", true},
		{"deliver skips shipping", StatusPendingPickup, "deliver", "", true},
		{"return before delivery", StatusPendingDelivery, "return", "", true},
		{"no action on cancelled", StatusCancelled, "ship", "", true},
		{"unknown action", StatusPendingPickup, "explode", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.from, tt.action)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("NextStatus(%q, %q) error = %v, want ErrInvalidTransition", tt.from, tt.action, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextStatus(%q, %q) error = %v", tt.from, tt.action, err)
			}
			if got != tt.want {
				t.Fatalf("NextStatus(%q, %q) = %q, want %q", tt.from, tt.action, got, tt.want)
			}
		})
	}
}
