package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

// CancellationScheduler enqueues the delayed job that expires an unpaid
// payment. Scheduling is best-effort: a failed enqueue never rolls back a
// committed checkout (the reconcile tool covers stale payments).
type CancellationScheduler interface {
	ScheduleCancellation(ctx context.Context, paymentID int64) error
}

type Service struct {
	db        *gorm.DB
	scheduler CancellationScheduler
	logger    *slog.Logger
}

func NewService(db *gorm.DB, scheduler CancellationScheduler, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{db: db, scheduler: scheduler, logger: logger}
}

type CreateResult struct {
	PaymentID int64          `json:"paymentId"`
	Orders    []orders.Order `json:"orders"`
}

// Create converts cart items into orders: one order per shipment group,
// all hanging off a single PENDING payment. Validation is fail-fast before
// the transaction opens, so a rejected checkout leaves no side effects.
// The transaction then creates the payment, the orders with their line
// snapshots, deducts stock and deletes the consumed cart items as one
// all-or-nothing unit.
func (s *Service) Create(ctx context.Context, userID int64, groups []Group) (CreateResult, error) {
	ids := FlattenCartItemIDs(groups)
	if len(ids) == 0 {
		return CreateResult{}, ErrEmptyCheckout
	}

	var items []cart.CartItem
	if err := s.db.WithContext(ctx).
		Preload("SKU").
		Preload("SKU.Product").
		Preload("SKU.Product.Translations", "deleted_at IS NULL").
		Find(&items, "id IN ? AND user_id = ?", ids, userID).Error; err != nil {
		return CreateResult{}, err
	}

	if err := ValidateCheckout(groups, items, time.Now()); err != nil {
		return CreateResult{}, err
	}

	byID := make(map[int64]cart.CartItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var result CreateResult
	err := products.WithTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		result = CreateResult{}

		payment := payments.Payment{Status: payments.StatusPending}
		if err := tx.WithContext(ctx).Create(&payment).Error; err != nil {
			return err
		}

		for _, g := range groups {
			order := orders.Order{
				UserID:      userID,
				ShopID:      g.ShopID,
				Status:      orders.StatusPendingPayment,
				Receiver:    g.Receiver.JSON(),
				PaymentID:   payment.ID,
				CreatedByID: &userID,
			}
			for _, cartItemID := range g.CartItemIDs {
				item := byID[cartItemID]
				order.Items = append(order.Items, snapshotLine(item))
			}
			if err := tx.WithContext(ctx).Create(&order).Error; err != nil {
				return err
			}
			result.Orders = append(result.Orders, order)
		}

		lines := make([]products.StockLine, 0, len(items))
		for _, it := range items {
			lines = append(lines, products.StockLine{SKUID: it.SKUID, Qty: it.Quantity})
		}
		if err := products.DeductStockInTx(ctx, tx, lines); err != nil {
			return err
		}

		if err := tx.WithContext(ctx).
			Where("id IN ?", ids).
			Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}

		result.PaymentID = payment.ID
		return nil
	})
	if err != nil {
		var oos *products.OutOfStockError
		if errors.As(err, &oos) {
			// lost a concurrent stock race after the pre-tx check passed
			return CreateResult{}, ErrOutOfStock
		}
		return CreateResult{}, err
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleCancellation(ctx, result.PaymentID); err != nil {
			s.logger.ErrorContext(ctx, "failed to schedule payment cancellation",
				slog.Int64("payment_id", result.PaymentID), slog.Any("err", err))
		}
	}

	s.logger.InfoContext(ctx, "checkout_created",
		slog.Int64("user_id", userID),
		slog.Int64("payment_id", result.PaymentID),
		slog.Int("orders", len(result.Orders)),
	)
	return result, nil
}

// snapshotLine freezes the cart item's product and SKU state into an order
// line. Caller guarantees item.SKU and item.SKU.Product are loaded.
func snapshotLine(item cart.CartItem) orders.ProductSKUSnapshot {
	sku := item.SKU
	product := sku.Product

	translations := make([]orders.TranslationSnapshot, 0, len(product.Translations))
	for _, tr := range product.Translations {
		translations = append(translations, orders.TranslationSnapshot{
			ID:          tr.ID,
			Name:        tr.Name,
			Description: tr.Description,
			LanguageID:  tr.LanguageID,
		})
	}
	trJSON, _ := json.Marshal(translations)

	productID := product.ID
	skuID := sku.ID
	return orders.ProductSKUSnapshot{
		ProductID:           &productID,
		ProductName:         product.Name,
		ProductTranslations: datatypes.JSON(trJSON),
		SKUID:               &skuID,
		SKUValue:            sku.Value,
		SKUPrice:            sku.Price,
		Image:               sku.Image,
		Quantity:            item.Quantity,
	}
}
