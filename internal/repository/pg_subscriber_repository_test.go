package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsAlreadyExists(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate table", &pgconn.PgError{Code: "42P07"}, true},
		{"type catalog race", &pgconn.PgError{Code: "23505", ConstraintName: "pg_type_typname_nsp_index"}, true},
		{"wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "42P07"}), true},
		{"other unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "subscribers_email_key"}, false},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"plain error", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isAlreadyExists(tc.err); got != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("plain error is not a unique violation")
	}
}

func TestPgRegisterIfNew_NilPool(t *testing.T) {
	repo := NewPgSubscriberRepository(nil)

	isNew, err := repo.RegisterIfNew(context.Background(), "a@example.com")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if isNew {
		t.Error("a failed call must not report new")
	}
	if err := repo.Ping(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured from Ping, got %v", err)
	}
}

func TestNewPool_EmptyConnString(t *testing.T) {
	if _, err := NewPool(context.Background(), " "); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

// The tests below need a real server and run only when TEST_DATABASE_URL is set.

func newTestPgRepo(t *testing.T) *PgSubscriberRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := NewPool(context.Background(), dsn)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return NewPgSubscriberRepository(pool)
}

func uniqueAddress(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestPgRegisterIfNew_Integration_Idempotent(t *testing.T) {
	repo := newTestPgRepo(t)
	ctx := context.Background()
	email := uniqueAddress("idem")

	first, err := repo.RegisterIfNew(ctx, email)
	if err != nil {
		t.Fatalf("first RegisterIfNew: %v", err)
	}
	second, err := repo.RegisterIfNew(ctx, email)
	if err != nil {
		t.Fatalf("second RegisterIfNew: %v", err)
	}
	if !first || second {
		t.Errorf("expected (true, false), got (%v, %v)", first, second)
	}
}

func TestPgRegisterIfNew_Integration_Concurrent(t *testing.T) {
	repo := newTestPgRepo(t)
	ctx := context.Background()
	email := uniqueAddress("race")

	const n = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		newCount int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			isNew, err := repo.RegisterIfNew(ctx, email)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if isNew {
				mu.Lock()
				newCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if newCount != 1 {
		t.Errorf("expected exactly 1 new outcome, got %d", newCount)
	}
}
