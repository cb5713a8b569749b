package mailer

import (
	"fmt"
	"os"
	"strings"

	"vastra/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Send delivers a single HTML mail through SendGrid. Failures are returned
// to the caller; nothing in the order flow depends on delivery succeeding.
func Send(toEmail, subject, htmlBody string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	from := mail.NewEmail("Vastra Store", os.Getenv("EMAIL_FROM"))
	to := mail.NewEmail("", toEmail)
	plain := stripTags(htmlBody)
	message := mail.NewSingleEmail(from, subject, to, plain, htmlBody)

	resp, err := sendgrid.NewSendClient(apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail rejected: status %d", resp.StatusCode)
	}
	return nil
}

// SendOTP mails a login code. The code expires in 10 minutes.
func SendOTP(toEmail, otp string) error {
	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	  <h2 style="color: #333;">Welcome to Vastra</h2>
	  <p>Your OTP for login is:</p>
	  <div style="background: #f4f4f4; padding: 20px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 2px;">%s</div>
	  <p>This OTP will expire in 10 minutes.</p>
	  <p>If you didn't request this, please ignore this email.</p>
	</div>`, otp)
	return Send(toEmail, "Your OTP for Vastra Login", html)
}

// SendOrderConfirmation mails an order summary after checkout.
func SendOrderConfirmation(toEmail string, order models.Order) error {
	var lines strings.Builder
	for _, it := range order.Items {
		fmt.Fprintf(&lines, "<li>%s x %d: ₹%.2f</li>", it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}
	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	  <h2 style="color: #333;">Order Confirmed</h2>
	  <p>Your order <strong>#%s</strong> has been placed.</p>
	  <ul>%s</ul>
	  <p>Total: <strong>₹%.2f</strong> (%s)</p>
	</div>`, order.OrderID, lines.String(), order.TotalAmount, order.PaymentMethod)
	return Send(toEmail, "Your Vastra Order "+order.OrderID, html)
}

func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
