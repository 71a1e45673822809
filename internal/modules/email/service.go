// Package email builds the buyer-facing notification messages and hands
// them to the mailer.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/TamTranZrgz/ecom-nest/internal/mailer"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
)

type Service struct {
	mailer   mailer.Service
	from     string
	fromName string
}

func NewService(m mailer.Service, from, fromName string) *Service {
	return &Service{mailer: m, from: from, fromName: fromName}
}

// SendPaymentConfirmation notifies the buyer that a transfer settled their
// payment and the orders under it moved on to fulfilment.
func (s *Service) SendPaymentConfirmation(ctx context.Context, to, name string, paymentID, total int64, orderIDs []int64) error {
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = fmt.Sprintf("#%d", id)
	}
	orderList := strings.Join(ids, ", ")
	reference := payments.FormatPaymentCode(paymentID)

	subject := fmt.Sprintf("Payment received for order %s", orderList)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nWe received your payment of %d for order %s (payment reference %s).\nYour order is now being prepared for pickup.\n\nThank you!",
		name, total, orderList, reference)
	htmlBody := fmt.Sprintf(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Payment received</h2>
    <p>Hi %s,</p>
    <p>We received your payment of <strong>%d</strong> for order %s.</p>
    <p><strong>Payment reference:</strong> %s</p>
    <p>Your order is now being prepared for pickup.</p>
    <p>Thank you!</p>
  </body>
</html>
`, name, total, orderList, reference)

	return s.mailer.Send(ctx, mailer.Email{
		FromName: s.fromName,
		From:     s.from,
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
