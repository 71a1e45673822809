package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// PaymentCanceller is the worker-side seam to the payments module.
type PaymentCanceller interface {
	CancelExpired(ctx context.Context, paymentID int64) error
}

func NewMux(canceller PaymentCanceller, logger *slog.Logger) *asynq.ServeMux {
	if logger == nil {
		logger = slog.Default()
	}
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCancelPayment, newCancelPaymentHandler(canceller, logger))
	return mux
}

func newCancelPaymentHandler(canceller PaymentCanceller, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p CancelPaymentPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("bad cancel payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := canceller.CancelExpired(ctx, p.PaymentID); err != nil {
			logger.ErrorContext(ctx, "cancel payment job failed",
				slog.Int64("payment_id", p.PaymentID), slog.Any("err", err))
			return err
		}
		return nil
	}
}
