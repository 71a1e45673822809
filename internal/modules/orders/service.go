package orders

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

type Service struct {
	db   *gorm.DB
	repo *Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepo(db)}
}

func (s *Service) List(ctx context.Context, in ListByUserParams) (ListByUserResult, error) {
	return s.repo.ListByUser(ctx, in)
}

func (s *Service) Detail(ctx context.Context, userID, orderID int64) (Order, error) {
	return s.repo.GetWithItems(ctx, userID, orderID)
}

// Cancel is the buyer-initiated cancel. Only PENDING_PAYMENT orders can be
// cancelled; the conditional update is the race guard against a webhook
// flipping the order to PENDING_PICKUP at the same moment. The restock of
// this order's lines commits in the same transaction as the status flip.
func (s *Service) Cancel(ctx context.Context, userID, orderID int64) (Order, error) {
	var cancelled Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Preload("Items").
			First(&o, "id = ? AND user_id = ? AND deleted_at IS NULL", orderID, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrOrderNotFound
			}
			return err
		}

		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, StatusPendingPayment).
			Updates(map[string]any{
				"status":        StatusCancelled,
				"updated_by_id": userID,
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCannotCancelOrder
		}

		if err := products.RestockInTx(ctx, tx, RestockLines([]Order{o})); err != nil {
			return err
		}

		cancelled = o
		cancelled.Status = StatusCancelled
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return cancelled, nil
}
