package service

import (
	"errors"
	"fmt"

	"github.com/ebnn/backend/internal/mail"
	"github.com/ebnn/backend/internal/repository"
	"github.com/ebnn/backend/pkg/resend"
)

// Kind classifies workflow failures for the transport layer.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidInput is a missing or malformed field. No side effects ran.
	KindInvalidInput
	// KindConfiguration is a required credential or identifier that is unset.
	KindConfiguration
	// KindStorage is a connection or query fault in the subscriber store.
	KindStorage
	// KindProvider is a fault reported by the email or audience provider.
	KindProvider
	// KindPartialSuccess means the subscriber was recorded but the welcome
	// email failed. The record is not rolled back.
	KindPartialSuccess
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConfiguration:
		return "configuration"
	case KindStorage:
		return "storage"
	case KindProvider:
		return "provider"
	case KindPartialSuccess:
		return "partial_success"
	default:
		return "unknown"
	}
}

// Error is a classified workflow failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var (
	ErrEmailRequired  = errors.New("email is required")
	ErrInvalidEmail   = errors.New("a valid email address is required")
	ErrMessageTooLong = errors.New("message is too long")
)

// MissingFieldError names a required request field that was empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string { return e.Field + " is required" }

func invalidInput(op string, err error) error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: err}
}

// classify maps a downstream error from a store or provider onto a Kind.
func classify(op string, err error) error {
	kind := KindProvider
	switch {
	case errors.Is(err, repository.ErrNotConfigured), errors.Is(err, resend.ErrNotConfigured),
		errors.Is(err, mail.ErrNotConfigured):
		kind = KindConfiguration
	case errors.Is(err, repository.ErrStorage):
		kind = KindStorage
	case errors.Is(err, repository.ErrProvider):
		kind = KindProvider
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
