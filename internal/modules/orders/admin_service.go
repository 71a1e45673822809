package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotActionable = errors.New("order not actionable")

// AdminService moves orders through the fulfilment part of the status
// machine (ship / deliver / return). Payment-side transitions stay with
// the webhook and cancellation paths.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

type TransitionInput struct {
	OrderID     int64
	ActorUserID int64
	Action      string // ship|deliver|return
}

func (s *AdminService) Transition(ctx context.Context, in TransitionInput) (Order, error) {
	if in.OrderID == 0 || in.ActorUserID == 0 || in.Action == "" {
		return Order{}, ErrNotActionable
	}

	var out Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ? AND deleted_at IS NULL", in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		to, err := NextStatus(o.Status, in.Action)
		if err != nil {
			return err
		}

		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, o.Status). // optimistic guard
			Updates(map[string]any{
				"status":        to,
				"updated_by_id": in.ActorUserID,
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		out = o
		out.Status = to
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return out, nil
}

type AdminListParams struct {
	Status   string
	ShopID   int64
	Page     int
	PageSize int
}

type AdminListResult struct {
	Items []Order
	Total int64
}

func (s *AdminService) List(ctx context.Context, in AdminListParams) (AdminListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	base := s.db.WithContext(ctx).Model(&Order{}).Where("deleted_at IS NULL")
	if status := strings.TrimSpace(in.Status); status != "" {
		base = base.Where("status = ?", status)
	}
	if in.ShopID != 0 {
		base = base.Where("shop_id = ?", in.ShopID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return AdminListResult{}, err
	}

	var items []Order
	if err := base.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return AdminListResult{}, err
	}

	return AdminListResult{Items: items, Total: total}, nil
}
