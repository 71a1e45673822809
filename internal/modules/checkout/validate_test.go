package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

func publishedProduct(shopID int64, publishedAt time.Time) *products.Product {
	return &products.Product{ID: 1, CreatedByID: shopID, PublishedAt: &publishedAt}
}

func item(id, skuID, shopID int64, qty, stock int, p *products.Product) cart.CartItem {
	return cart.CartItem{
		ID:       id,
		SKUID:    skuID,
		Quantity: qty,
		SKU: &products.SKU{
			ID:          skuID,
			Stock:       stock,
			CreatedByID: shopID,
			Product:     p,
		},
	}
}

func TestFlattenCartItemIDs(t *testing.T) {
	groups := []Group{
		{ShopID: 1, CartItemIDs: []int64{3, 1}},
		{ShopID: 2, CartItemIDs: []int64{2}},
	}
	got := FlattenCartItemIDs(groups)
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("FlattenCartItemIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FlattenCartItemIDs() = %v, want %v", got, want)
		}
	}
}

func TestValidateCheckout(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	live := publishedProduct(7, now.Add(-time.Hour))
	future := publishedProduct(7, now.Add(time.Hour))
	recv := orders.Receiver{Name: "Buyer", Phone: "0123", Address: "1 Main St"}

	tests := []struct {
		name    string
		groups  []Group
		items   []cart.CartItem
		wantErr error
	}{
		{
			name: "ok single shop",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1, 2}},
			},
			items: []cart.CartItem{
				item(1, 10, 7, 2, 5, live),
				item(2, 11, 7, 1, 1, live),
			},
		},
		{
			name: "ok two shops",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1}},
				{ShopID: 9, Receiver: recv, CartItemIDs: []int64{2}},
			},
			items: []cart.CartItem{
				item(1, 10, 7, 1, 5, live),
				item(2, 11, 9, 1, 5, publishedProduct(9, now.Add(-time.Hour))),
			},
		},
		{
			name:    "empty checkout",
			groups:  []Group{{ShopID: 7, Receiver: recv}},
			wantErr: ErrEmptyCheckout,
		},
		{
			name: "missing cart item",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1, 99}},
			},
			items:   []cart.CartItem{item(1, 10, 7, 1, 5, live)},
			wantErr: ErrCartItemNotFound,
		},
		{
			name: "count matches but ids do not",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1, 99}},
			},
			items: []cart.CartItem{
				item(1, 10, 7, 1, 5, live),
				item(2, 11, 7, 1, 5, live),
			},
			wantErr: ErrCartItemNotFound,
		},
		{
			name: "insufficient stock",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1}},
			},
			items:   []cart.CartItem{item(1, 10, 7, 3, 2, live)},
			wantErr: ErrOutOfStock,
		},
		{
			name: "unpublished product",
			groups: []Group{
				{ShopID: 7, Receiver: recv, CartItemIDs: []int64{1}},
			},
			items:   []cart.CartItem{item(1, 10, 7, 1, 5, future)},
			wantErr: ErrProductNotFound,
		},
		{
			name: "sku from another shop",
			groups: []Group{
				{ShopID: 9, Receiver: recv, CartItemIDs: []int64{1}},
			},
			items:   []cart.CartItem{item(1, 10, 7, 1, 5, live)},
			wantErr: ErrSKUNotBelongToShop,
		},
		{
			name: "stock checked before shop ownership",
			groups: []Group{
				{ShopID: 9, Receiver: recv, CartItemIDs: []int64{1}},
			},
			items:   []cart.CartItem{item(1, 10, 7, 3, 0, live)},
			wantErr: ErrOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckout(tt.groups, tt.items, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateCheckout() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
