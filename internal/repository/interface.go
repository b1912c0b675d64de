package repository

import "context"

// DB reports whether a backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// SubscriberRepository is the duplicate-detection primitive. RegisterIfNew
// atomically records email and reports whether it was not already present.
// Callers must not check membership first and act on the answer; two
// concurrent calls for the same address never both return true.
//
// The email is expected to be normalized and to have passed the weak format
// check. Any failure is returned as an error and never as isNew=false.
type SubscriberRepository interface {
	RegisterIfNew(ctx context.Context, email string) (isNew bool, err error)
}
