package queue

import "fmt"

const (
	// QueuePayment is the asynq queue carrying payment lifecycle jobs.
	QueuePayment = "payment"

	// TaskCancelPayment expires a payment that was never settled.
	TaskCancelPayment = "payment:cancel"
)

type CancelPaymentPayload struct {
	PaymentID int64 `json:"paymentId"`
}

// CancelTaskID derives the deterministic task id for a payment's cancel
// job. Re-scheduling the same payment hits the id conflict instead of
// creating a duplicate job.
func CancelTaskID(paymentID int64) string {
	return fmt.Sprintf("cancel:%d", paymentID)
}
