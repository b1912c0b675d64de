package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ebnn/backend/internal/model"
	"github.com/ebnn/backend/pkg/resend"
)

func validContact() *model.ContactMessage {
	return &model.ContactMessage{Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "Hello!"}
}

func TestContactService_Relay_SendsTwoEmails(t *testing.T) {
	sender := &recordingSender{}
	svc := NewContactService(sender, testMessages(), 5000)

	if err := svc.Relay(context.Background(), validContact()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := sender.calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 dispatch calls, got %d", len(calls))
	}
	recipients := map[string]bool{}
	for _, e := range calls {
		recipients[e.To] = true
	}
	if !recipients["admin@example.com"] {
		t.Error("expected an admin-addressed email")
	}
	if !recipients["alice@example.com"] {
		t.Error("expected a visitor-addressed email")
	}
}

func TestContactService_Relay_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		msg   *model.ContactMessage
		field string
	}{
		{"no name", &model.ContactMessage{Email: "a@b.co", Message: "Hi"}, "name"},
		{"no email", &model.ContactMessage{Name: "A", Message: "Hi"}, "email"},
		{"no message", &model.ContactMessage{Name: "A", Email: "a@b.co"}, "message"},
		{"blank message", &model.ContactMessage{Name: "A", Email: "a@b.co", Message: "   "}, "message"},
	}
	for _, tc := range cases {
		sender := &recordingSender{}
		svc := NewContactService(sender, testMessages(), 5000)

		err := svc.Relay(context.Background(), tc.msg)
		if KindOf(err) != KindInvalidInput {
			t.Errorf("%s: expected invalid input, got %v", tc.name, err)
		}
		var mf *MissingFieldError
		if !errors.As(err, &mf) || mf.Field != tc.field {
			t.Errorf("%s: expected missing field %q, got %v", tc.name, tc.field, err)
		}
		if n := len(sender.calls()); n != 0 {
			t.Errorf("%s: expected 0 dispatch calls, got %d", tc.name, n)
		}
	}
}

func TestContactService_Relay_SubjectOptional(t *testing.T) {
	sender := &recordingSender{}
	svc := NewContactService(sender, testMessages(), 5000)

	msg := validContact()
	msg.Subject = ""
	if err := svc.Relay(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(sender.calls()); n != 2 {
		t.Errorf("expected 2 dispatch calls, got %d", n)
	}
}

func TestContactService_Relay_MessageTooLong(t *testing.T) {
	sender := &recordingSender{}
	svc := NewContactService(sender, testMessages(), 10)

	msg := validContact()
	msg.Message = strings.Repeat("あ", 11)
	err := svc.Relay(context.Background(), msg)
	if !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("expected ErrMessageTooLong, got %v", err)
	}
	if n := len(sender.calls()); n != 0 {
		t.Errorf("expected 0 dispatch calls, got %d", n)
	}

	msg.Message = strings.Repeat("あ", 10)
	if err := svc.Relay(context.Background(), msg); err != nil {
		t.Errorf("expected message at the limit to pass, got %v", err)
	}
}

// TestContactService_Relay_OneFailureWaitsForBoth verifies join semantics: the
// failing send returns immediately, and Relay still waits for the slow one.
func TestContactService_Relay_OneFailureWaitsForBoth(t *testing.T) {
	release := make(chan struct{})
	slowDone := make(chan struct{})
	sender := &recordingSender{
		sendFunc: func(ctx context.Context, email *model.Email) error {
			if email.To == "admin@example.com" {
				return errors.New("provider down")
			}
			<-release
			close(slowDone)
			return nil
		},
	}
	svc := NewContactService(sender, testMessages(), 5000)

	result := make(chan error, 1)
	go func() { result <- svc.Relay(context.Background(), validContact()) }()

	select {
	case err := <-result:
		t.Fatalf("Relay returned before the second dispatch finished: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	err := <-result
	select {
	case <-slowDone:
	default:
		t.Error("expected the visitor dispatch to complete before Relay returned")
	}
	if KindOf(err) != KindProvider {
		t.Errorf("expected provider failure, got %v", err)
	}
	if n := len(sender.calls()); n != 2 {
		t.Errorf("expected both dispatches invoked, got %d", n)
	}
}

func TestContactService_Relay_NotConfigured(t *testing.T) {
	sender := &recordingSender{
		sendFunc: func(ctx context.Context, email *model.Email) error {
			return resend.ErrNotConfigured
		},
	}
	svc := NewContactService(sender, testMessages(), 5000)

	err := svc.Relay(context.Background(), validContact())
	if KindOf(err) != KindConfiguration {
		t.Errorf("expected configuration failure, got %v", err)
	}
}
