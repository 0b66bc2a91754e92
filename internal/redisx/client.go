// Package redisx holds the Redis client and the payment idempotency store.
package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return rdb, nil
}

// IdempotencyTTL is how long a payment intent can be replayed by key.
const IdempotencyTTL = 24 * time.Hour

type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// IdempotencyStore caches payment-intent client secrets by request key.
type IdempotencyStore struct {
	rdb kv
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: IdempotencyTTL}
}

func idemKey(key string) string {
	return fmt.Sprintf("idem:payment-intent:%s", key)
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, idemKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *IdempotencyStore) Set(ctx context.Context, key, clientSecret string) error {
	return s.rdb.Set(ctx, idemKey(key), clientSecret, s.ttl).Err()
}
