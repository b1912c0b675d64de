package service

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/ebnn/backend/internal/mail"
	"github.com/ebnn/backend/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sender           mail.Sender
	messages         *mail.Messages
	maxMessageLength int
}

// NewContactService creates a ContactService. maxMessageLength is counted in
// runes; zero disables the limit.
func NewContactService(sender mail.Sender, messages *mail.Messages, maxMessageLength int) ContactService {
	return &contactServiceImpl{sender: sender, messages: messages, maxMessageLength: maxMessageLength}
}

func (s *contactServiceImpl) Relay(ctx context.Context, msg *model.ContactMessage) error {
	const op = "relay contact"

	msg.Trim()
	if field := msg.MissingField(); field != "" {
		return invalidInput(op, &MissingFieldError{Field: field})
	}
	if s.maxMessageLength > 0 && utf8.RuneCountInString(msg.Message) > s.maxMessageLength {
		return invalidInput(op, ErrMessageTooLong)
	}

	admin := s.messages.AdminNotification(msg)
	ack := s.messages.Acknowledgement(msg)

	// No derived context: one failed send must not cancel the other.
	var g errgroup.Group
	g.Go(func() error { return s.dispatch(ctx, "admin", admin) })
	g.Go(func() error { return s.dispatch(ctx, "visitor", ack) })
	if err := g.Wait(); err != nil {
		return classify(op, err)
	}
	return nil
}

func (s *contactServiceImpl) dispatch(ctx context.Context, role string, email *model.Email) error {
	if err := s.sender.Send(ctx, email); err != nil {
		slog.ErrorContext(ctx, "contact email failed", "role", role, "to", email.To, "error", err)
		return err
	}
	return nil
}
