package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the collection keys inside a shared Redis instance.
const keyPrefix = "envios:"

// RedisStore implements the Store interface using Redis. Each collection
// document lives under a single key and is replaced wholesale on Write,
// mirroring the file backend's rewrite semantics.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis document store.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	return &RedisStore{client: client}, nil
}

// Read retrieves a collection document from Redis.
func (s *RedisStore) Read(ctx context.Context, collection string) ([]byte, error) {
	val, err := s.client.Get(ctx, keyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return val, nil
}

// Write replaces a collection document in Redis. Documents never expire.
func (s *RedisStore) Write(ctx context.Context, collection string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+collection, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
