package service

import (
	"context"
	"sync"

	"github.com/ebnn/backend/internal/mail"
	"github.com/ebnn/backend/internal/model"
)

// ---------------------------------------------------------------------------
// recordingSender: thread-safe mail.Sender stub
// ---------------------------------------------------------------------------

type recordingSender struct {
	mu           sync.Mutex
	sent         []*model.Email
	sendFunc     func(ctx context.Context, email *model.Email) error
	unconfigured bool
}

func (s *recordingSender) Configured() bool { return !s.unconfigured }

func (s *recordingSender) Send(ctx context.Context, email *model.Email) error {
	s.mu.Lock()
	s.sent = append(s.sent, email)
	s.mu.Unlock()
	if s.sendFunc != nil {
		return s.sendFunc(ctx, email)
	}
	return nil
}

func (s *recordingSender) calls() []*model.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Email, len(s.sent))
	copy(out, s.sent)
	return out
}

// ---------------------------------------------------------------------------
// mockSubscriberRepository
// ---------------------------------------------------------------------------

type mockSubscriberRepository struct {
	registerFunc func(ctx context.Context, email string) (bool, error)
	mu           sync.Mutex
	emails       []string
}

func (m *mockSubscriberRepository) RegisterIfNew(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	m.emails = append(m.emails, email)
	m.mu.Unlock()
	if m.registerFunc != nil {
		return m.registerFunc(ctx, email)
	}
	return true, nil
}

func testMessages() *mail.Messages {
	return mail.NewMessages(mail.Identity{
		ContactFrom: "contact@example.com",
		AckFrom:     "connect@example.com",
		WelcomeFrom: "welcome@example.com",
		AdminTo:     "admin@example.com",
		OwnerName:   "Owner",
		SiteName:    "example.com",
		SiteURL:     "https://example.com",
		LogoURL:     "https://example.com/pfp.png",
	})
}
