package cart

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// validateSKU loads the SKU with its product and checks it can be added:
// exists, enough stock, product purchasable.
func (r *Repo) validateSKU(ctx context.Context, skuID int64, quantity int) (*products.SKU, error) {
	var sku products.SKU
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&sku, "id = ? AND deleted_at IS NULL", skuID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSKUNotFound
	}
	if err != nil {
		return nil, err
	}

	if sku.Stock < quantity {
		return nil, ErrOutOfStock
	}
	if !sku.Product.Purchasable(time.Now()) {
		return nil, ErrProductNotFound
	}
	return &sku, nil
}

// Add creates the cart row, or bumps quantity when the (user, sku) row
// already exists (unique key 1062).
func (r *Repo) Add(ctx context.Context, userID, skuID int64, quantity int) (CartItem, error) {
	if _, err := r.validateSKU(ctx, skuID, quantity); err != nil {
		return CartItem{}, err
	}

	item := CartItem{
		UserID:   userID,
		SKUID:    skuID,
		Quantity: quantity,
	}
	err := r.db.WithContext(ctx).Create(&item).Error
	if err != nil {
		if !isDup(err) {
			return CartItem{}, err
		}
		res := r.db.WithContext(ctx).
			Model(&CartItem{}).
			Where("user_id = ? AND sku_id = ?", userID, skuID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
		if res.Error != nil {
			return CartItem{}, res.Error
		}
		var merged CartItem
		if err := r.db.WithContext(ctx).First(&merged, "user_id = ? AND sku_id = ?", userID, skuID).Error; err != nil {
			return CartItem{}, err
		}
		return merged, nil
	}
	return item, nil
}

type ListParams struct {
	UserID   int64
	Page     int
	PageSize int
}

type ListResult struct {
	Items []CartItem
	Total int64
}

func (r *Repo) List(ctx context.Context, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 20
	}

	q := r.db.WithContext(ctx).Model(&CartItem{}).Where("user_id = ?", in.UserID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []CartItem
	if err := q.
		Preload("SKU").
		Preload("SKU.Product").
		Preload("SKU.Product.Translations", "deleted_at IS NULL").
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total}, nil
}

func (r *Repo) UpdateItem(ctx context.Context, userID, cartItemID, skuID int64, quantity int) (CartItem, error) {
	if _, err := r.validateSKU(ctx, skuID, quantity); err != nil {
		return CartItem{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Updates(map[string]any{"sku_id": skuID, "quantity": quantity})
	if res.Error != nil {
		return CartItem{}, res.Error
	}
	if res.RowsAffected == 0 {
		return CartItem{}, ErrCartItemNotFound
	}

	var item CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", cartItemID).Error; err != nil {
		return CartItem{}, err
	}
	return item, nil
}

// Delete removes the given cart items, scoped to the owner. Returns the
// number of rows actually deleted.
func (r *Repo) Delete(ctx context.Context, userID int64, cartItemIDs []int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", cartItemIDs, userID).
		Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

func isDup(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
