package infra

import (
	"context"
	"fmt"
	"time"

	"failcourse.com/internal/constants"
	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps the deny list of logged-out tokens, keyed by jti.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

// Revoke marks a token as logged out until it would have expired anyway.
func (s *RedisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 已过期，无需记录
	}
	if err := s.rdb.Set(ctx, constants.RedisKeyRevokedToken+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id is on the deny list.
func (s *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, constants.RedisKeyRevokedToken+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return n > 0, nil
}
