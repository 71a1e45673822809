package checkout

import (
	"time"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
)

// Group is one shipment group of a checkout call: the cart items the buyer
// assigned to a single shop, with the receiver for that shipment.
type Group struct {
	ShopID      int64           `json:"shopId"`
	Receiver    orders.Receiver `json:"receiver"`
	CartItemIDs []int64         `json:"cartItemIds"`
}

// FlattenCartItemIDs collects every cart item id referenced by the groups,
// in declaration order.
func FlattenCartItemIDs(groups []Group) []int64 {
	var out []int64
	for _, g := range groups {
		out = append(out, g.CartItemIDs...)
	}
	return out
}

// ValidateCheckout runs every check of order creation against the loaded
// cart items, before any transaction opens. Order matters: completeness,
// stock, availability, shop ownership; the first failure wins.
func ValidateCheckout(groups []Group, items []cart.CartItem, now time.Time) error {
	ids := FlattenCartItemIDs(groups)
	if len(ids) == 0 {
		return ErrEmptyCheckout
	}

	// 1. Every referenced cart item must have resolved to a row owned by
	// the buyer.
	if len(items) != len(ids) {
		return ErrCartItemNotFound
	}
	byID := make(map[int64]cart.CartItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return ErrCartItemNotFound
		}
	}

	// 2. Requested quantity must be in stock.
	for _, it := range items {
		if it.SKU == nil {
			return ErrCartItemNotFound
		}
		if it.SKU.Stock < it.Quantity {
			return ErrOutOfStock
		}
	}

	// 3. Product must still be purchasable.
	for _, it := range items {
		if !it.SKU.Product.Purchasable(now) {
			return ErrProductNotFound
		}
	}

	// 4. Every cart item must belong to the shop its group declares. This
	// stops a client from mislabelling shipment groups to dodge the
	// per-shop order split.
	for _, g := range groups {
		for _, id := range g.CartItemIDs {
			if byID[id].SKU.CreatedByID != g.ShopID {
				return ErrSKUNotBelongToShop
			}
		}
	}

	return nil
}
