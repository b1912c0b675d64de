package repository

import (
	"context"
	"sync"
	"time"
)

// MemorySubscriberRepository keeps subscribers in process memory. It is
// meant for local development and tests; state is lost on restart.
type MemorySubscriberRepository struct {
	mu          sync.Mutex
	subscribers map[string]time.Time
}

func NewMemorySubscriberRepository() *MemorySubscriberRepository {
	return &MemorySubscriberRepository{subscribers: make(map[string]time.Time)}
}

var (
	_ SubscriberRepository = (*MemorySubscriberRepository)(nil)
	_ DB                   = (*MemorySubscriberRepository)(nil)
)

func (r *MemorySubscriberRepository) RegisterIfNew(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, storageError("register subscriber", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subscribers[email]; ok {
		return false, nil
	}
	r.subscribers[email] = time.Now().UTC()
	return true, nil
}

// Len returns the number of stored subscribers.
func (r *MemorySubscriberRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

func (r *MemorySubscriberRepository) Ping(ctx context.Context) error { return nil }
