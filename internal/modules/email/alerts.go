package email

import (
	"context"
	"fmt"
	"html"

	"github.com/authenticcheckers/waecvoucherpfront/internal/mailer"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

// Alerts sends operational mail to the store operator. Delivery is
// best-effort; callers log and move on.
type Alerts struct {
	mailer   mailer.Service
	from     string
	fromName string
	to       string
}

func NewAlerts(m mailer.Service, from, fromName, to string) *Alerts {
	return &Alerts{mailer: m, from: from, fromName: fromName, to: to}
}

func (a *Alerts) Enabled() bool { return a != nil && a.mailer != nil && a.to != "" }

// LowStock warns that a voucher type is close to selling out.
func (a *Alerts) LowStock(ctx context.Context, voucherType string, available int) error {
	if !a.Enabled() {
		return nil
	}

	display := vouchers.DisplayName(voucherType)
	subject := fmt.Sprintf("Low stock: %s (%d left)", display, available)
	textBody := fmt.Sprintf(
		"Stock warning from VoucherHub.\n\nType: %s\nAvailable: %d\n\nUpload more vouchers from the dashboard before this type sells out.\n",
		display, available,
	)
	htmlBody := `
<html>
  <body style="font-family: sans-serif;">
    <h2>Low stock warning</h2>
    <p><strong>Type:</strong> ` + html.EscapeString(display) + `</p>
    <p><strong>Available:</strong> ` + fmt.Sprintf("%d", available) + `</p>
    <p>Upload more vouchers from the dashboard before this type sells out.</p>
    <p>VoucherHub</p>
  </body>
</html>
`

	return a.mailer.Send(ctx, mailer.Email{
		From:     a.from,
		FromName: a.fromName,
		To:       []string{a.to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
