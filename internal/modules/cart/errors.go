package cart

import "errors"

var (
	ErrSKUNotFound      = errors.New("sku not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("sku out of stock")
	ErrCartItemNotFound = errors.New("cart item not found")
)
