package email

import (
	"context"
	"strings"
	"testing"

	"github.com/TamTranZrgz/ecom-nest/internal/mailer"
)

func TestSendPaymentConfirmation(t *testing.T) {
	mock := &mailer.Mock{}
	svc := NewService(mock, "no-reply@local.test", "Shop")

	err := svc.SendPaymentConfirmation(context.Background(), "buyer@example.com", "Buyer", 42, 300000, []int64{7, 8})
	if err != nil {
		t.Fatalf("SendPaymentConfirmation() error = %v", err)
	}

	if len(mock.Sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(mock.Sent))
	}
	e := mock.Sent[0]
	if len(e.To) != 1 || e.To[0] != "buyer@example.com" {
		t.Errorf("To = %v, want [buyer@example.com]", e.To)
	}
	if e.From != "no-reply@local.test" {
		t.Errorf("From = %q", e.From)
	}
	for _, want := range []string{"DH42", "#7", "#8", "300000"} {
		if !strings.Contains(e.TextBody, want) {
			t.Errorf("text body missing %q:\n%s", want, e.TextBody)
		}
	}
	if e.HTMLBody == "" {
		t.Error("html body empty")
	}
}
