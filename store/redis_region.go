package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRegion persists slots as Redis keys. Writes are atomic per key,
// which is all the region contract asks for.
type RedisRegion struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRegion wraps a Redis client. A zero ttl keeps slots forever;
// otherwise every write refreshes the expiry.
func NewRedisRegion(client *redis.Client, ttl time.Duration) *RedisRegion {
	return &RedisRegion{client: client, ttl: ttl}
}

func (r *RedisRegion) key(slot string) string {
	return "state:" + slot
}

func (r *RedisRegion) Read(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisRegion) Write(ctx context.Context, slot string, data []byte) error {
	return r.client.Set(ctx, r.key(slot), data, r.ttl).Err()
}

func (r *RedisRegion) Delete(ctx context.Context, slot string) error {
	return r.client.Del(ctx, r.key(slot)).Err()
}
