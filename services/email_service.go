package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"shopping-cart/config"
	"shopping-cart/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns an error when SMTP is not configured; the
// caller then runs without confirmation emails.
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed", order.ID))

	var lines strings.Builder
	for _, item := range order.OrderItems {
		fmt.Fprintf(&lines, "<tr><td>%s</td><td>%d</td><td>%.2f</td></tr>", item.Name, item.Quantity, item.Price)
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Thank you for your order!</h2>
	<p>Your order <strong>#%d</strong> has been received and paid.</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Item</th><th>Qty</th><th>Price</th></tr>
		%s
	</table>
	<p><strong>Total: %.2f</strong></p>
	<p>Shipping to: %s, %s, %s</p>
</body>
</html>`,
		order.ID,
		lines.String(),
		order.TotalPrice,
		order.ShippingAddress.Address,
		order.ShippingAddress.City,
		order.ShippingAddress.PostalCode,
	)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
