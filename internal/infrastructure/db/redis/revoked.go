package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokenStore records logged-out JWT IDs in Redis, each keyed until
// the token's own expiry so the set cleans itself up.
// Key format: revoked:<jti>
type RevokedTokenStore struct {
	client *redis.Client
}

// NewRevokedTokenStore creates a RevokedTokenStore wrapping the given client.
func NewRevokedTokenStore(client *redis.Client) *RevokedTokenStore {
	return &RevokedTokenStore{client: client}
}

// Revoke marks the token as logged out until its expiry. Tokens already
// past expiry get a short grace TTL so the key still lands.
func (s *RevokedTokenStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.Set(ctx, s.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the token has been logged out.
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevokedTokenStore) key(jti string) string {
	return fmt.Sprintf("revoked:%s", jti)
}
