package queue

import (
	"encoding/json"
	"testing"
)

func TestCancelTaskID(t *testing.T) {
	if got := CancelTaskID(42); got != "cancel:42" {
		t.Fatalf("CancelTaskID(42) = %q, want %q", got, "cancel:42")
	}
	// Distinct payments must never collide on task id.
	if CancelTaskID(1) == CancelTaskID(11) {
		t.Fatal("CancelTaskID(1) collides with CancelTaskID(11)")
	}
}

func TestCancelPaymentPayloadWireFormat(t *testing.T) {
	b, err := json.Marshal(CancelPaymentPayload{PaymentID: 7})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"paymentId":7}` {
		t.Fatalf("payload = %s, want {\"paymentId\":7}", b)
	}

	var p CancelPaymentPayload
	if err := json.Unmarshal([]byte(`{"paymentId":99}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.PaymentID != 99 {
		t.Fatalf("PaymentID = %d, want 99", p.PaymentID)
	}
}
