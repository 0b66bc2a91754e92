package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeKV struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestIdempotencyStore(t *testing.T) {
	kv := &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
	store := &IdempotencyStore{rdb: kv, ttl: IdempotencyTTL}
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "k1", "pi_1_secret_x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if kv.ttls["idem:payment-intent:k1"] != 24*time.Hour {
		t.Fatalf("unexpected ttl %v", kv.ttls)
	}
	v, ok, err := store.Get(ctx, "k1")
	if err != nil || !ok || v != "pi_1_secret_x" {
		t.Fatalf("unexpected get result %q %v %v", v, ok, err)
	}
}
