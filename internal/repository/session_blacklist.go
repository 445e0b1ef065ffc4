package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionPrefix = "revoked:session:"

type revocationStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionBlacklist records revoked session ids in Redis so the auth guard can reject their access
// tokens without a database round trip.
type SessionBlacklist struct {
	store revocationStore
}

// NewSessionBlacklist wraps a Redis client.
func NewSessionBlacklist(client *redis.Client) *SessionBlacklist {
	return &SessionBlacklist{store: client}
}

// Revoke marks sessionID as revoked for ttl.
func (b *SessionBlacklist) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := b.store.Set(ctx, revokedSessionPrefix+sessionID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist session: %w", err)
	}
	return nil
}

// IsRevoked reports whether sessionID has been revoked.
func (b *SessionBlacklist) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := b.store.Exists(ctx, revokedSessionPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("check session blacklist: %w", err)
	}
	return n > 0, nil
}
