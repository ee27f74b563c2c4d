// Package mailer sends transactional mails. The Mailer interface keeps the
// worker decoupled from the concrete provider.
package mailer

//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go *

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailer sends a single mail to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// sendTimeout caps how long a single provider call may take.
const sendTimeout = 10 * time.Second

// Mailgun implements Mailer on top of the mailgun HTTP API.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

func (m *Mailgun) Send(ctx context.Context, to, subject, text string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if _, _, err := client.Send(ctx, msg); err != nil {
		return fmt.Errorf("could not send mail via mailgun: %w", err)
	}

	return nil
}
