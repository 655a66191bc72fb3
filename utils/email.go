// utils/email.go
package utils

import (
	"fmt"
	"html"

	"shinmen-coffee/models"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	from   string
	inbox  string
}

// NewEmailService returns nil when no Postmark token is configured
func NewEmailService(cfg Config) *EmailService {
	if cfg.PostmarkToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(cfg.PostmarkToken, ""),
		from:   cfg.EmailSender,
		inbox:  cfg.ContactInbox,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.from,
		To:       toEmail,
		ReplyTo:  es.from,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// ForwardContactMessage sends a contact form submission to the shop inbox
func (es *EmailService) ForwardContactMessage(msg models.ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from the website"
	}
	text := fmt.Sprintf("From: %s <%s>\n\n%s\n", msg.Name, msg.Email, msg.Message)
	body := fmt.Sprintf("<strong>From:</strong> %s &lt;%s&gt;<br><br>%s", html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message))
	return es.SendEmail(es.inbox, "[Contact] "+subject, body, text)
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Your Shinmen Coffee order"
	text := fmt.Sprintf(
		"Thank you for your order %s!\n\nTotal: $%.2f\nPickup: %s\nReady around: %s\n",
		order.ID, order.Total, order.PickupLocation, order.EstimatedReadyTime.Format("15:04"),
	)
	body := fmt.Sprintf(
		"<strong>Thank you for your order!</strong><br><br>Order: %s<br>Total: <strong>$%.2f</strong><br>Pickup: %s<br>Ready around: <strong>%s</strong>",
		order.ID, order.Total, html.EscapeString(order.PickupLocation), order.EstimatedReadyTime.Format("15:04"),
	)
	return es.SendEmail(toEmail, subject, body, text)
}
