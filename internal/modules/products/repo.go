package products

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("product not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	Page     int
	PageSize int
}

type ListResult struct {
	Items []Product
	Total int64
}

// List returns published products only. Catalog management lives in the
// seller back office; this API is read-only.
func (r *Repo) List(ctx context.Context, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 20
	}

	now := time.Now()
	q := r.db.WithContext(ctx).Model(&Product{}).
		Where("deleted_at IS NULL AND published_at IS NOT NULL AND published_at <= ?", now)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []Product
	if err := q.
		Preload("Translations", "deleted_at IS NULL").
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total}, nil
}

func (r *Repo) GetPublished(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Preload("Translations", "deleted_at IS NULL").
		Preload("SKUs", "deleted_at IS NULL").
		First(&p, "id = ? AND deleted_at IS NULL AND published_at IS NOT NULL AND published_at <= ?", id, time.Now()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}
