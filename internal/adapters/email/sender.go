package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"rilliex/internal/domain/contact"
)

// SendRequest contains the data needed to send an email via an external provider.
type SendRequest struct {
	To      []string // Recipient email addresses
	From    string   // Sender address (e.g. "Rilliex Site <noreply@rilliex.com>")
	Subject string
	HTML    string // HTML body
	ReplyTo string // Reply-to address
}

// SendResult contains the response from the email provider.
type SendResult struct {
	MessageID string    // Provider's message ID for tracking
	SentAt    time.Time // When the send was accepted
}

// Sender is the interface for sending emails via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}

// ContactNotification builds the email relayed to the site owner when a
// visitor submits the business-contact form. Replies go straight to the
// visitor's address.
func ContactNotification(msg contact.Message, owner string) SendRequest {
	body := fmt.Sprintf(
		"<p><strong>%s</strong> (%s) sent a business enquiry:</p><blockquote>%s</blockquote>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Body),
	)
	return SendRequest{
		To:      []string{owner},
		Subject: fmt.Sprintf("New enquiry from %s", msg.Name),
		HTML:    body,
		ReplyTo: msg.Email,
	}
}
