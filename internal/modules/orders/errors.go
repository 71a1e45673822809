package orders

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrCannotCancelOrder = errors.New("order can no longer be cancelled")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
