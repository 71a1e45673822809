package products

import "time"

type Product struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(500);not null" json:"name"`
	BasePrice   int64      `gorm:"not null" json:"basePrice"`
	CreatedByID int64      `gorm:"not null;index:ix_products_created_by" json:"createdById"`
	PublishedAt *time.Time `gorm:"type:datetime(3);index:ix_products_published_at" json:"publishedAt"`
	DeletedAt   *time.Time `gorm:"type:datetime(3)" json:"-"`
	CreatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"updatedAt"`

	Translations []ProductTranslation `gorm:"foreignKey:ProductID" json:"productTranslations,omitempty"`
	SKUs         []SKU                `gorm:"foreignKey:ProductID" json:"skus,omitempty"`
}

func (Product) TableName() string { return "products" }

type ProductTranslation struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64      `gorm:"not null;index:ix_product_translations_product" json:"productId"`
	LanguageID  string     `gorm:"type:varchar(10);not null" json:"languageId"`
	Name        string     `gorm:"type:varchar(500);not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	DeletedAt   *time.Time `gorm:"type:datetime(3)" json:"-"`
	CreatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"updatedAt"`
}

func (ProductTranslation) TableName() string { return "product_translations" }

type SKU struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64      `gorm:"not null;index:ix_skus_product" json:"productId"`
	Value       string     `gorm:"type:varchar(255);not null" json:"value"`
	Price       int64      `gorm:"not null" json:"price"`
	Stock       int        `gorm:"not null" json:"stock"`
	Image       string     `gorm:"type:varchar(1000);not null" json:"image"`
	CreatedByID int64      `gorm:"not null;index:ix_skus_created_by" json:"createdById"`
	DeletedAt   *time.Time `gorm:"type:datetime(3)" json:"-"`
	CreatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"type:datetime(3);not null" json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (SKU) TableName() string { return "skus" }

// Purchasable reports whether the product can be bought right now:
// not soft-deleted, published, and publish date not in the future.
func (p *Product) Purchasable(now time.Time) bool {
	if p == nil || p.DeletedAt != nil {
		return false
	}
	return p.PublishedAt != nil && !p.PublishedAt.After(now)
}
