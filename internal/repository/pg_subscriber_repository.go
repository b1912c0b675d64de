package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSubscribersTable = `CREATE TABLE IF NOT EXISTS subscribers (
	id SERIAL PRIMARY KEY,
	email VARCHAR(255) UNIQUE NOT NULL,
	subscribed_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
)`

const insertSubscriber = `INSERT INTO subscribers (email)
	VALUES ($1)
	ON CONFLICT (email) DO NOTHING
	RETURNING id`

// execQuerier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type execQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EnsureSubscribersTable creates the subscribers relation if it is absent.
// Concurrent callers racing on the catalog are treated as success.
func EnsureSubscribersTable(ctx context.Context, q execQuerier) error {
	if _, err := q.Exec(ctx, createSubscribersTable); err != nil && !isAlreadyExists(err) {
		return storageError("ensure subscribers table", err)
	}
	return nil
}

// isAlreadyExists matches the errors PostgreSQL raises when two sessions run
// CREATE TABLE IF NOT EXISTS at the same moment.
func isAlreadyExists(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "42P07": // duplicate_table
		return true
	case "23505": // unique_violation on the type catalog
		return pgErr.ConstraintName == "pg_type_typname_nsp_index"
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PgSubscriberRepository is the PostgreSQL SubscriberRepository. Uniqueness
// is enforced by the UNIQUE email column; ON CONFLICT DO NOTHING RETURNING id
// yields a row only when this call inserted it.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository. A nil pool
// produces ErrNotConfigured on every call.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

var (
	_ SubscriberRepository = (*PgSubscriberRepository)(nil)
	_ DB                   = (*PgSubscriberRepository)(nil)
)

// RegisterIfNew acquires one connection for the duration of the call, ensures
// the schema, and performs the atomic insert.
func (r *PgSubscriberRepository) RegisterIfNew(ctx context.Context, email string) (bool, error) {
	if r.pool == nil {
		return false, notConfigured("register subscriber", "DATABASE_URL is not set")
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, storageError("acquire connection", err)
	}
	defer conn.Release()

	if err := EnsureSubscribersTable(ctx, conn); err != nil {
		return false, err
	}

	var id int64
	err = conn.QueryRow(ctx, insertSubscriber, email).Scan(&id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	case isUniqueViolation(err):
		return false, storageError("insert subscriber: unique violation outside conflict clause", err)
	default:
		return false, storageError("insert subscriber", err)
	}
}

// Ping checks the pool can reach the server.
func (r *PgSubscriberRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return notConfigured("ping", "DATABASE_URL is not set")
	}
	return r.pool.Ping(ctx)
}
