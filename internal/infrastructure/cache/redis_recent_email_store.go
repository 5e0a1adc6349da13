package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/infrastructure/config"
)

// RedisRecentEmailStore keeps the recent login emails in a Redis list so
// the history survives restarts and is shared across instances.
type RedisRecentEmailStore struct {
	client *redis.Client
	key    string
}

// NewRedisClient connects to Redis using the application configuration
// and verifies the connection with a ping.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRedisRecentEmailStore creates a store backed by an existing Redis client
func NewRedisRecentEmailStore(client *redis.Client, key string) *RedisRecentEmailStore {
	if key == "" {
		key = "auth:recent_emails"
	}
	return &RedisRecentEmailStore{
		client: client,
		key:    key,
	}
}

// Record moves the email to the front of the list, dropping any earlier
// occurrence, and trims the list to identity.RecentEmailLimit.
func (s *RedisRecentEmailStore) Record(ctx context.Context, email string) error {
	pipe := s.client.TxPipeline()
	pipe.LRem(ctx, s.key, 0, email)
	pipe.LPush(ctx, s.key, email)
	pipe.LTrim(ctx, s.key, 0, int64(identity.RecentEmailLimit)-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record recent email: %w", err)
	}
	return nil
}

// List returns the remembered emails, most recent first
func (s *RedisRecentEmailStore) List(ctx context.Context) ([]string, error) {
	emails, err := s.client.LRange(ctx, s.key, 0, int64(identity.RecentEmailLimit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent emails: %w", err)
	}
	return emails, nil
}

// Close closes the underlying Redis client
func (s *RedisRecentEmailStore) Close() error {
	return s.client.Close()
}

var _ identity.RecentEmailStore = (*RedisRecentEmailStore)(nil)
