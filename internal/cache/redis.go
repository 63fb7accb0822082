package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a Redis instance, for deployments that share
// memoized results across replicas.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the given address. TTL applies to every entry.
func NewRedis(addr string, ttl time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb, ttl: ttl}
}

func (r *Redis) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(key string, value string) error {
	return r.client.Set(context.Background(), key, value, r.ttl).Err()
}
