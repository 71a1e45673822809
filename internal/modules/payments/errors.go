package payments

import "errors"

// ErrPaymentAlreadyFailed marks a webhook arriving for a payment the
// cancellation path already expired.
var ErrPaymentAlreadyFailed = errors.New("payment already cancelled")
