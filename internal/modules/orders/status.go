package orders

const (
	StatusPendingPayment  = "PENDING_PAYMENT"
	StatusPendingPickup   = "PENDING_PICKUP"
	StatusPendingDelivery = "PENDING_DELIVERY"
	StatusDelivered       = "DELIVERED"
	StatusReturned        = "RETURNED"
	StatusCancelled       = "CANCELLED"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPendingPayment, StatusPendingPickup, StatusPendingDelivery,
		StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// NextStatus maps a back-office action onto the status machine. Payment
// transitions (PENDING_PAYMENT -> PENDING_PICKUP, -> CANCELLED) are owned
// by the webhook and cancellation paths, not by admin actions.
func NextStatus(from, action string) (string, error) {
	switch action {
	case "ship":
		if from == StatusPendingPickup {
			return StatusPendingDelivery, nil
		}
	case "deliver":
		if from == StatusPendingDelivery {
			return StatusDelivered, nil
		}
	case "return":
		if from == StatusDelivered {
			return StatusReturned, nil
		}
	}
	return "", ErrInvalidTransition
}
