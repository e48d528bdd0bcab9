package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := store.Allow(ctx, "login:203.0.113.9", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
	}
}

func TestRateLimitStore_BlocksOverLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "login:203.0.113.9", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "login:203.0.113.9", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_SeparateKeys(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "login:a", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "login:b", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, int64(2), result.Remaining)
}

func TestRateLimitStore_Remaining(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "key", 10, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(10)-i, result.Remaining)
	}
}
