package payments

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

// CancelService expires unpaid payments. It runs from the delayed job
// fired after checkout and from the reconcile fallback tool.
type CancelService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewCancelService(db *gorm.DB, logger *slog.Logger) *CancelService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CancelService{db: db, logger: logger}
}

// CancelExpired cancels the payment and its unpaid orders, restoring the
// stock the checkout deducted. The PENDING -> FAILED conditional update is
// the mutual-exclusion guard against a concurrently arriving webhook: if
// zero rows match, the webhook already settled the payment and the whole
// call is a no-op.
func (s *CancelService) CancelExpired(ctx context.Context, paymentID int64) error {
	var cancelledOrders int

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.WithContext(ctx).
			Model(&Payment{}).
			Where("id = ? AND status = ?", paymentID, StatusPending).
			Updates(map[string]any{"status": StatusFailed, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // settled or already cancelled, nothing to do
		}

		// FOR UPDATE pins the still-unpaid order set for the rest of the
		// transaction: a concurrent buyer cancel serializes behind the
		// lock, so the restock below matches exactly the rows the status
		// update flips. A plain read could restock an order the buyer
		// cancelled (and restocked) in between.
		var pendingOrders []orders.Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Find(&pendingOrders, "payment_id = ? AND status = ?", paymentID, orders.StatusPendingPayment).Error; err != nil {
			return err
		}

		if err := products.RestockInTx(ctx, tx, orders.RestockLines(pendingOrders)); err != nil {
			return err
		}

		if err := tx.WithContext(ctx).
			Model(&orders.Order{}).
			Where("payment_id = ? AND status = ?", paymentID, orders.StatusPendingPayment).
			Updates(map[string]any{"status": orders.StatusCancelled, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		cancelledOrders = len(pendingOrders)
		return nil
	})
	if err != nil {
		return err
	}

	if cancelledOrders > 0 {
		s.logger.InfoContext(ctx, "payment_expired",
			slog.Int64("payment_id", paymentID),
			slog.Int("orders_cancelled", cancelledOrders),
		)
	}
	return nil
}

// ListStalePending returns PENDING payments created before the cutoff.
// Used by the reconcile tool when the delayed job was never enqueued.
func (s *CancelService) ListStalePending(ctx context.Context, cutoff time.Time) ([]Payment, error) {
	var out []Payment
	err := s.db.WithContext(ctx).
		Find(&out, "status = ? AND created_at < ?", StatusPending, cutoff).Error
	return out, err
}
