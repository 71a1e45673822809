package checkout

import "errors"

var (
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOutOfStock         = errors.New("sku out of stock")
	ErrProductNotFound    = errors.New("product not found or not published")
	ErrSKUNotBelongToShop = errors.New("sku does not belong to the declared shop")
	ErrEmptyCheckout      = errors.New("checkout has no cart items")
)
