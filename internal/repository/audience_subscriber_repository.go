package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/ebnn/backend/pkg/resend"
)

// AudienceSubscriberRepository mirrors subscribers into a Resend audience.
// Only an explicit 409 Conflict from the provider counts as "already a
// member"; any other provider error is a failure.
type AudienceSubscriberRepository struct {
	client     resend.Client
	audienceID string
}

// NewAudienceSubscriberRepository creates an AudienceSubscriberRepository.
// An empty audienceID produces ErrNotConfigured on every call.
func NewAudienceSubscriberRepository(client resend.Client, audienceID string) *AudienceSubscriberRepository {
	return &AudienceSubscriberRepository{client: client, audienceID: strings.TrimSpace(audienceID)}
}

var _ SubscriberRepository = (*AudienceSubscriberRepository)(nil)

func (r *AudienceSubscriberRepository) RegisterIfNew(ctx context.Context, email string) (bool, error) {
	if r.audienceID == "" {
		return false, notConfigured("create audience contact", "RESEND_AUDIENCE_ID is not set")
	}

	_, err := r.client.CreateContact(ctx, r.audienceID, resend.Contact{
		Email:        email,
		FirstName:    "Subscriber",
		Unsubscribed: false,
	})
	switch {
	case err == nil:
		return true, nil
	case resend.IsConflict(err):
		return false, nil
	case errors.Is(err, resend.ErrNotConfigured):
		return false, notConfigured("create audience contact", "RESEND_API_KEY is not set")
	default:
		return false, providerError("create audience contact", err)
	}
}
