package cart

import (
	"time"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

// CartItem is unique per (user, sku): adding the same SKU twice increments
// quantity instead of creating a second row.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:ux_cart_items_user_sku,priority:1" json:"userId"`
	SKUID     int64     `gorm:"column:sku_id;not null;uniqueIndex:ux_cart_items_user_sku,priority:2" json:"skuId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null" json:"updatedAt"`

	SKU *products.SKU `gorm:"foreignKey:SKUID" json:"sku,omitempty"`
}

func (CartItem) TableName() string { return "cart_items" }

// ShopInfo is the seller summary shown on a grouped cart.
type ShopInfo struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// ShopCart groups a user's cart items under the shop that sells them.
type ShopCart struct {
	Shop      ShopInfo   `json:"shop"`
	CartItems []CartItem `json:"cartItems"`
}
