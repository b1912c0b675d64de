package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the selected backend is missing a
	// required setting (connection string, address, audience id).
	ErrNotConfigured = errors.New("repository: not configured")
	// ErrStorage tags connection and query faults from a store.
	ErrStorage = errors.New("repository: storage failure")
	// ErrProvider tags faults from an external audience provider.
	ErrProvider = errors.New("repository: provider failure")
)

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func providerError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrProvider, err)
}

func notConfigured(op, what string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrNotConfigured, what)
}
