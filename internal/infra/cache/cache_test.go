package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys   map[string]bool
	ttls   map[string]time.Duration
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: map[string]bool{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, exp time.Duration) *redis.BoolCmd {
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if f.keys[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = true
	f.ttls[key] = exp
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if f.keys[k] {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestReminderClaims(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	claims := NewReminderClaims(rdb, 15*time.Minute)

	ok, err := claims.Claim(ctx, 9)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15*time.Minute, rdb.ttls["reminder:booking:9"])

	ok, err = claims.Claim(ctx, 9)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, claims.Release(ctx, 9))
	ok, err = claims.Claim(ctx, 9)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReminderClaimsError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.setErr = errors.New("connection refused")

	ok, err := NewReminderClaims(rdb, time.Minute).Claim(context.Background(), 1)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "connection refused")
}

func TestMemoryClaimsExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	c := NewMemoryClaims(10 * time.Minute)
	c.now = func() time.Time { return now }

	ok, _ := c.Claim(ctx, 1)
	assert.True(t, ok)
	ok, _ = c.Claim(ctx, 1)
	assert.False(t, ok)

	now = now.Add(11 * time.Minute)
	ok, _ = c.Claim(ctx, 1)
	assert.True(t, ok)
}
