package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/users"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

// gateway timestamp format, e.g. "2025-03-14 10:22:45"
const transactionDateLayout = "2006-01-02 15:04:05"

// WebhookPayload is the bank gateway notification as delivered on the
// wire. Field names are the gateway's, not ours.
type WebhookPayload struct {
	Gateway         string  `json:"gateway" binding:"required"`
	TransactionDate string  `json:"transactionDate" binding:"required"`
	AccountNumber   *string `json:"accountNumber"`
	SubAccount      *string `json:"subAccount"`
	TransferType    string  `json:"transferType" binding:"required,oneof=in out"`
	TransferAmount  int64   `json:"transferAmount" binding:"required,gt=0"`
	Accumulated     int64   `json:"accumulated"`
	Code            *string `json:"code"`
	Content         *string `json:"content"`
	ReferenceCode   *string `json:"referenceCode"`
}

// Notifier sends the buyer-facing confirmation after a payment settles.
// Delivery is best effort: a send failure never fails the webhook.
type Notifier interface {
	SendPaymentConfirmation(ctx context.Context, to, name string, paymentID, total int64, orderIDs []int64) error
}

type WebhookService struct {
	db        *gorm.DB
	orderRepo *orders.Repo
	notifier  Notifier
	logger    *slog.Logger
}

// NewWebhookService builds the webhook processor. notifier may be nil to
// disable confirmation emails.
func NewWebhookService(db *gorm.DB, notifier Notifier, logger *slog.Logger) *WebhookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{db: db, orderRepo: orders.NewRepo(db), notifier: notifier, logger: logger}
}

// Receive processes one gateway notification. The audit row is written
// first and survives every later failure; the gateway's own redelivery is
// the retry mechanism for rejected notifications.
func (s *WebhookService) Receive(ctx context.Context, payload WebhookPayload, rawBody []byte) error {
	if err := s.recordTransaction(ctx, payload, rawBody); err != nil {
		return err
	}

	paymentID, ok := ResolvePaymentID(deref(payload.Code), deref(payload.Content))
	if !ok {
		return apperr.InvalidErr("Cannot get payment id from content", nil)
	}

	var payment Payment
	if err := s.db.WithContext(ctx).First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr(fmt.Sprintf("Can not get payment with id %d", paymentID))
		}
		return err
	}

	paymentOrders, err := s.orderRepo.ListByPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	totalPrice := ExpectedTotal(paymentOrders)
	if totalPrice != payload.TransferAmount {
		return apperr.ConflictErr(fmt.Sprintf(
			"Total price does not match, expected %d but got %d", totalPrice, payload.TransferAmount))
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only the first terminal transition on a PENDING payment wins;
		// this conditional update is the race guard against the delayed
		// cancellation job.
		res := tx.WithContext(ctx).
			Model(&Payment{}).
			Where("id = ? AND status = ?", paymentID, StatusPending).
			Updates(map[string]any{"status": StatusSuccess, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Redelivery of an already applied notification is a no-op;
			// a cancelled payment is a hard reject.
			var current Payment
			if err := tx.WithContext(ctx).First(&current, "id = ?", paymentID).Error; err != nil {
				return err
			}
			if current.Status != StatusSuccess {
				return ErrPaymentAlreadyFailed
			}
		}

		return tx.WithContext(ctx).
			Model(&orders.Order{}).
			Where("payment_id = ? AND status IN ?", paymentID,
				[]string{orders.StatusPendingPayment, orders.StatusPendingPickup}).
			Updates(map[string]any{"status": orders.StatusPendingPickup, "updated_at": time.Now()}).Error
	})
	if err != nil {
		if errors.Is(err, ErrPaymentAlreadyFailed) {
			return apperr.ConflictErr("Payment has already been cancelled")
		}
		return err
	}

	s.logger.InfoContext(ctx, "payment_webhook_applied",
		slog.Int64("payment_id", paymentID),
		slog.Int64("amount", payload.TransferAmount),
		slog.Int("orders", len(paymentOrders)),
	)

	s.notifyBuyer(ctx, paymentID, totalPrice, paymentOrders)
	return nil
}

func (s *WebhookService) notifyBuyer(ctx context.Context, paymentID, total int64, paymentOrders []orders.Order) {
	if s.notifier == nil || len(paymentOrders) == 0 {
		return
	}

	var buyer users.User
	if err := s.db.WithContext(ctx).First(&buyer, "id = ?", paymentOrders[0].UserID).Error; err != nil {
		s.logger.WarnContext(ctx, "payment confirmation skipped: buyer lookup failed",
			slog.Int64("payment_id", paymentID), slog.Any("err", err))
		return
	}

	orderIDs := make([]int64, len(paymentOrders))
	for i, o := range paymentOrders {
		orderIDs[i] = o.ID
	}
	if err := s.notifier.SendPaymentConfirmation(ctx, buyer.Email, buyer.Name, paymentID, total, orderIDs); err != nil {
		s.logger.WarnContext(ctx, "payment confirmation send failed",
			slog.Int64("payment_id", paymentID), slog.Any("err", err))
	}
}

// recordTransaction writes the unconditional audit row outside the status
// transaction so a later rejection never rolls it back.
func (s *WebhookService) recordTransaction(ctx context.Context, payload WebhookPayload, rawBody []byte) error {
	txDate, err := time.Parse(transactionDateLayout, payload.TransactionDate)
	if err != nil {
		txDate = time.Now()
	}

	amountIn, amountOut := SplitAmount(payload.TransferType, payload.TransferAmount)

	row := PaymentTransaction{
		Gateway:            payload.Gateway,
		TransactionDate:    txDate,
		AccountNumber:      payload.AccountNumber,
		SubAccount:         payload.SubAccount,
		AmountIn:           amountIn,
		AmountOut:          amountOut,
		Accumulated:        payload.Accumulated,
		Code:               payload.Code,
		TransactionContent: payload.Content,
		ReferenceNumber:    payload.ReferenceCode,
		Body:               datatypes.JSON(rawBody),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.ErrorContext(ctx, "failed to persist payment transaction",
			slog.String("gateway", payload.Gateway), slog.Any("err", err))
		return err
	}
	return nil
}

// SplitAmount maps the gateway transfer direction onto the audit columns.
func SplitAmount(transferType string, amount int64) (in, out int64) {
	if transferType == "in" {
		return amount, 0
	}
	return 0, amount
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
