package redisstore

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// PreferenceStore persists preferences as plain Redis strings without expiry.
type PreferenceStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewPreferenceStore creates a store writing keys as keyPrefix+key.
func NewPreferenceStore(client redis.UniversalClient, keyPrefix string) *PreferenceStore {
	return &PreferenceStore{client: client, keyPrefix: keyPrefix}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceStore = (*PreferenceStore)(nil)

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// GetItem returns the value stored under key.
func (s *PreferenceStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *PreferenceStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}
