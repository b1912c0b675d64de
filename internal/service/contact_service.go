package service

import (
	"context"

	"github.com/ebnn/backend/internal/model"
)

// ContactService relays contact form messages by email.
type ContactService interface {
	// Relay validates msg and sends the operator notification and the visitor
	// acknowledgement concurrently. It returns after both attempts finish and
	// fails if either failed.
	Relay(ctx context.Context, msg *model.ContactMessage) error
}
