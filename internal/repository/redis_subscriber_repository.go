package repository

import (
	"context"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultSubscribersKey is the redis set holding subscriber addresses.
const DefaultSubscribersKey = "subscribers"

// NewRedisClient builds a client for addr. It does not connect.
func NewRedisClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})
}

// RedisSubscriberRepository keeps subscribers in a redis set. SADD is atomic
// and reports 1 only for the caller that added the member.
type RedisSubscriberRepository struct {
	rdb *goredis.Client
	key string
}

// NewRedisSubscriberRepository creates a RedisSubscriberRepository. A nil
// client produces ErrNotConfigured on every call.
func NewRedisSubscriberRepository(rdb *goredis.Client, key string) *RedisSubscriberRepository {
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultSubscribersKey
	}
	return &RedisSubscriberRepository{rdb: rdb, key: key}
}

var (
	_ SubscriberRepository = (*RedisSubscriberRepository)(nil)
	_ DB                   = (*RedisSubscriberRepository)(nil)
)

func (r *RedisSubscriberRepository) RegisterIfNew(ctx context.Context, email string) (bool, error) {
	if r.rdb == nil {
		return false, notConfigured("register subscriber", "REDIS_ADDR is not set")
	}
	added, err := r.rdb.SAdd(ctx, r.key, email).Result()
	if err != nil {
		return false, storageError("sadd subscriber", err)
	}
	return added == 1, nil
}

func (r *RedisSubscriberRepository) Ping(ctx context.Context) error {
	if r.rdb == nil {
		return notConfigured("ping", "REDIS_ADDR is not set")
	}
	return r.rdb.Ping(ctx).Err()
}
