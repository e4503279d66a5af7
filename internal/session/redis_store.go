package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "quickfixx:session:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisStoreFromURL parses a redis:// URL and pings the server.
func NewRedisStoreFromURL(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID, adminID string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+sessionID, adminID, ttl).Err()
}

func (s *RedisStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
