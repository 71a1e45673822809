package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

// Producer enqueues delayed payment-cancellation jobs. It satisfies
// checkout.CancellationScheduler.
type Producer struct {
	client *asynq.Client
	delay  time.Duration
}

func NewProducer(client *asynq.Client, delay time.Duration) *Producer {
	return &Producer{client: client, delay: delay}
}

// ScheduleCancellation enqueues the cancel job to fire no sooner than the
// configured delay. A second schedule for the same payment is a success
// no-op (deterministic task id). No retries: the job either observes a
// PENDING payment and cancels it, or finds nothing to do; stale payments
// left behind by a crashed worker are swept by the reconcile tool.
func (p *Producer) ScheduleCancellation(ctx context.Context, paymentID int64) error {
	payload, err := json.Marshal(CancelPaymentPayload{PaymentID: paymentID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskCancelPayment, payload)
	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue(QueuePayment),
		asynq.TaskID(CancelTaskID(paymentID)),
		asynq.ProcessIn(p.delay),
		asynq.MaxRetry(0),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
