package payments

import "github.com/TamTranZrgz/ecom-nest/internal/modules/orders"

// ExpectedTotal is the amount the buyer must transfer for a payment: the
// sum of snapshot price * quantity over every order line under it. Always
// computed from the snapshots, never from the live catalog.
func ExpectedTotal(paymentOrders []orders.Order) int64 {
	var total int64
	for _, o := range paymentOrders {
		for _, item := range o.Items {
			total += item.LineTotal()
		}
	}
	return total
}
