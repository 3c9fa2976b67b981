package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const stampTTL = 24 * time.Hour

// StampCache keeps the current security stamp per account so session
// consumers can detect stale credentials without a user-store round trip.
// Key format: stamp:<user_id>
type StampCache struct {
	client *redis.Client
}

// NewStampCache creates a StampCache wrapping the given Redis client.
func NewStampCache(client *redis.Client) *StampCache {
	return &StampCache{client: client}
}

// Remember records the account's current stamp (expires after stampTTL).
func (s *StampCache) Remember(ctx context.Context, userID, stamp string) error {
	return s.client.Set(ctx, s.key(userID), stamp, stampTTL).Err()
}

// Current returns the cached stamp for the account, or "" on a cache miss.
func (s *StampCache) Current(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stamp lookup: %w", err)
	}
	return val, nil
}

func (s *StampCache) key(userID string) string {
	return fmt.Sprintf("stamp:%s", userID)
}
