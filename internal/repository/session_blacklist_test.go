package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRevocationStore struct {
	keys    map[string]time.Duration
	failErr error
}

func (f *fakeRevocationStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	if f.keys == nil {
		f.keys = map[string]time.Duration{}
	}
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRevocationStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSessionBlacklistRevoke(t *testing.T) {
	store := &fakeRevocationStore{}
	bl := &SessionBlacklist{store: store}
	ctx := context.Background()

	revoked, err := bl.IsRevoked(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "sid-1", 15*time.Minute))
	assert.Equal(t, 15*time.Minute, store.keys["revoked:session:sid-1"])

	revoked, err = bl.IsRevoked(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestSessionBlacklistErrors(t *testing.T) {
	bl := &SessionBlacklist{store: &fakeRevocationStore{failErr: errors.New("connection refused")}}

	assert.Error(t, bl.Revoke(context.Background(), "sid", time.Minute))
	assert.Error(t, bl.Revoke(context.Background(), " ", time.Minute))

	_, err := bl.IsRevoked(context.Background(), "sid")
	assert.Error(t, err)
}
