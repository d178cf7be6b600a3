package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/siengefin/backend/internal/infrastructure/config"
)

// RedisLeaseStore implements Store using Redis. This is suitable for
// deployments where the API server and the sync CLI run as separate
// processes and need to share lease state.
type RedisLeaseStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisLeaseStore creates a new Redis-based lease store
func NewRedisLeaseStore(cfg config.RedisConfig) (*RedisLeaseStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisLeaseStore{
		client:    client,
		keyPrefix: "sync:lease:",
	}, nil
}

// NewRedisLeaseStoreWithClient creates a store with an existing Redis client
func NewRedisLeaseStoreWithClient(client *redis.Client, keyPrefix string) *RedisLeaseStore {
	if keyPrefix == "" {
		keyPrefix = "sync:lease:"
	}
	return &RedisLeaseStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Acquire takes the lease with SETNX so only one holder wins. The TTL bounds
// how long a crashed holder can block the next run.
func (s *RedisLeaseStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease: %w", err)
	}
	return ok, nil
}

// Release frees the lease
func (s *RedisLeaseStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release lease: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisLeaseStore) Close() error {
	return s.client.Close()
}
