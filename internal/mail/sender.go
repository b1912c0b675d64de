// Package mail holds the email dispatch primitive shared by the contact relay
// and the subscription workflow, plus the static message bodies they send.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebnn/backend/internal/model"
	"github.com/ebnn/backend/pkg/resend"
)

// ErrNotConfigured is returned when the sender has no provider credentials.
var ErrNotConfigured = errors.New("mail: sender not configured")

// Sender sends one email. Implementations make a single attempt and return
// the provider error unchanged (wrapped, never swallowed).
type Sender interface {
	Send(ctx context.Context, email *model.Email) error
	// Configured reports whether Send can reach a provider at all. Callers
	// with side effects check it before committing them.
	Configured() bool
}

// ResendSender is the Resend-backed Sender.
type ResendSender struct {
	client resend.Client
}

// NewResendSender creates a Sender that dispatches through client.
func NewResendSender(client resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

var _ Sender = (*ResendSender)(nil)

// Configured asks the client when it can tell; clients that cannot are
// assumed ready.
func (s *ResendSender) Configured() bool {
	if s.client == nil {
		return false
	}
	if c, ok := s.client.(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return true
}

// Send dispatches email once.
func (s *ResendSender) Send(ctx context.Context, email *model.Email) error {
	if email == nil {
		return errors.New("mail: email is required")
	}
	if email.To == "" {
		return errors.New("mail: recipient is required")
	}
	if s.client == nil {
		return ErrNotConfigured
	}

	req := resend.Email{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	}
	if email.ReplyTo != "" {
		req.ReplyTo = []string{email.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, req); err != nil {
		return fmt.Errorf("mail: send %q: %w", email.Subject, err)
	}
	return nil
}
