package service

import (
	"context"
	"log/slog"

	"github.com/ebnn/backend/internal/mail"
	"github.com/ebnn/backend/internal/model"
	"github.com/ebnn/backend/internal/repository"
)

// subscriptionServiceImpl is the production implementation of SubscriptionService.
type subscriptionServiceImpl struct {
	subscribers repository.SubscriberRepository
	sender      mail.Sender
	messages    *mail.Messages
}

// NewSubscriptionService creates a SubscriptionService backed by the given
// duplicate-detection repository and sender.
func NewSubscriptionService(subscribers repository.SubscriberRepository, sender mail.Sender, messages *mail.Messages) SubscriptionService {
	return &subscriptionServiceImpl{subscribers: subscribers, sender: sender, messages: messages}
}

func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, email string) (Outcome, error) {
	const op = "subscribe"

	addr := model.NormalizeEmail(email)
	if addr == "" {
		return 0, invalidInput(op, ErrEmailRequired)
	}
	if !model.LooksLikeEmail(addr) {
		return 0, invalidInput(op, ErrInvalidEmail)
	}

	// Without a sender a new record could never get its welcome email, and
	// every retry would read as already subscribed.
	if !s.sender.Configured() {
		err := classify(op, mail.ErrNotConfigured)
		slog.ErrorContext(ctx, "subscribe rejected", "kind", KindOf(err).String(), "error", err)
		return 0, err
	}

	isNew, err := s.subscribers.RegisterIfNew(ctx, addr)
	if err != nil {
		err = classify(op, err)
		slog.ErrorContext(ctx, "subscriber registration failed", "kind", KindOf(err).String(), "error", err)
		return 0, err
	}
	if !isNew {
		slog.InfoContext(ctx, "already subscribed", "email", addr)
		return OutcomeAlreadySubscribed, nil
	}

	if err := s.sender.Send(ctx, s.messages.Welcome(addr)); err != nil {
		slog.ErrorContext(ctx, "subscriber recorded but welcome email failed",
			"email", addr,
			"kind", KindPartialSuccess.String(),
			"error", err,
		)
		return OutcomeCreated, &Error{Kind: KindPartialSuccess, Op: op, Err: err}
	}

	slog.InfoContext(ctx, "subscribed", "email", addr)
	return OutcomeCreated, nil
}
