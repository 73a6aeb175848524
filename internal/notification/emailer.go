package notification

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
)

// EmailSender dispatches one HTML email and returns the provider id.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) (string, error)
}

// Emailer sends transactional email via Resend.
type Emailer struct {
	client    *resend.Client
	fromEmail string
}

// NewEmailer creates a Resend-backed sender. Falls back to the
// RESEND_API_KEY and FROM_EMAIL environment variables.
func NewEmailer(apiKey, fromEmail string) *Emailer {
	if apiKey == "" {
		apiKey = os.Getenv("RESEND_API_KEY")
	}
	if fromEmail == "" {
		fromEmail = os.Getenv("FROM_EMAIL")
	}
	if fromEmail == "" {
		fromEmail = "onboarding@resend.dev"
	}

	return &Emailer{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// Send dispatches one email to all recipients.
func (e *Emailer) Send(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    e.fromEmail,
		To:      to,
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := e.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}
	return sent.Id, nil
}
