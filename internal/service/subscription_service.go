package service

import "context"

// Outcome is the terminal success state of a subscription attempt.
type Outcome int

const (
	// OutcomeCreated means the address was new and the welcome email went out.
	OutcomeCreated Outcome = iota + 1
	// OutcomeAlreadySubscribed means the address was already recorded; no email was sent.
	OutcomeAlreadySubscribed
)

// SubscriptionService handles newsletter sign-ups.
type SubscriptionService interface {
	// Subscribe records email if it is new and, only then, sends one welcome
	// email. On a KindPartialSuccess error the returned Outcome is
	// OutcomeCreated.
	Subscribe(ctx context.Context, email string) (Outcome, error)
}
