package orders

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListByUserParams struct {
	UserID   int64
	Page     int
	PageSize int
	Status   string // optional filter
}

type ListByUserResult struct {
	Items []Order
	Total int64
}

func (r *Repo) ListByUser(ctx context.Context, in ListByUserParams) (ListByUserResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 20
	}
	status := strings.TrimSpace(in.Status)

	q := r.db.WithContext(ctx).Model(&Order{}).
		Where("user_id = ? AND deleted_at IS NULL", in.UserID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListByUserResult{}, err
	}

	var items []Order
	if err := q.
		Preload("Items").
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return ListByUserResult{}, err
	}

	return ListByUserResult{Items: items, Total: total}, nil
}

func (r *Repo) GetWithItems(ctx context.Context, userID, orderID int64) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ? AND user_id = ? AND deleted_at IS NULL", orderID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

// ListByPayment loads every order under a payment with its line snapshots.
func (r *Repo) ListByPayment(ctx context.Context, paymentID int64) ([]Order, error) {
	var out []Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&out, "payment_id = ? AND deleted_at IS NULL", paymentID).Error
	return out, err
}
