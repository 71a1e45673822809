package orders

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

type Order struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64          `gorm:"not null;index:ix_orders_user" json:"userId"`
	ShopID      int64          `gorm:"not null;index:ix_orders_shop" json:"shopId"`
	Status      string         `gorm:"type:varchar(32);not null;index:ix_orders_status" json:"status"`
	Receiver    datatypes.JSON `gorm:"type:json;not null" json:"receiver"`
	PaymentID   int64          `gorm:"not null;index:ix_orders_payment" json:"paymentId"`
	CreatedByID *int64         `json:"createdById"`
	UpdatedByID *int64         `json:"updatedById"`
	DeletedAt   *time.Time     `gorm:"type:datetime(3)" json:"-"`
	CreatedAt   time.Time      `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"type:datetime(3);not null" json:"updatedAt"`

	Items []ProductSKUSnapshot `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// Receiver is the shipping contact stored on the order as JSON.
type Receiver struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r Receiver) JSON() datatypes.JSON {
	b, _ := json.Marshal(r)
	return datatypes.JSON(b)
}

// ProductSKUSnapshot is a point-in-time copy of the product and SKU taken
// when the order was placed. It is written once and never re-derived from
// the live catalog, so later edits or deletions don't touch past orders.
type ProductSKUSnapshot struct {
	ID                  int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64          `gorm:"not null;index:ix_order_items_order" json:"orderId"`
	ProductID           *int64         `json:"productId"`
	ProductName         string         `gorm:"type:varchar(500);not null" json:"productName"`
	ProductTranslations datatypes.JSON `gorm:"type:json;not null" json:"productTranslations"`
	SKUID               *int64         `gorm:"column:sku_id" json:"skuId"`
	SKUValue            string         `gorm:"column:sku_value;type:varchar(255);not null" json:"skuValue"`
	SKUPrice            int64          `gorm:"column:sku_price;not null" json:"skuPrice"`
	Image               string         `gorm:"type:varchar(1000);not null" json:"image"`
	Quantity            int            `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time      `gorm:"type:datetime(3);not null" json:"createdAt"`
}

func (ProductSKUSnapshot) TableName() string { return "product_sku_snapshots" }

func (s ProductSKUSnapshot) LineTotal() int64 { return s.SKUPrice * int64(s.Quantity) }

// TranslationSnapshot is one denormalized translation row inside
// ProductSKUSnapshot.ProductTranslations.
type TranslationSnapshot struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LanguageID  string `json:"languageId"`
}

// RestockLines collects the stock lines to restore when the given orders
// are cancelled. Lines whose SKU was deleted since purchase are skipped;
// the snapshot keeps the historical record. Callers must pass exactly the
// orders whose status flip commits in the same transaction, or stock
// conservation breaks.
func RestockLines(os []Order) []products.StockLine {
	var lines []products.StockLine
	for _, o := range os {
		for _, it := range o.Items {
			if it.SKUID == nil {
				continue
			}
			lines = append(lines, products.StockLine{SKUID: *it.SKUID, Qty: it.Quantity})
		}
	}
	return lines
}
