package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_Lock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx))

	ok, err := client.SetNX(ctx, "lock", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "lock", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder is rejected")

	released, err := client.CompareAndDelete(ctx, "lock", "owner-b")
	require.NoError(t, err)
	assert.False(t, released, "only the owner can release")

	released, err = client.CompareAndDelete(ctx, "lock", "owner-a")
	require.NoError(t, err)
	assert.True(t, released)
	assert.False(t, mr.Exists("lock"))

	ok, err = client.SetNX(ctx, "lock", "owner-c", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("lock"), "ttl expires the lock")
}

func TestRedisClient_RateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	defer client.Close()

	limiter := client.NewRateLimiter()
	limit := redis_rate.PerMinute(1)

	res, err := limiter.Allow(context.Background(), "slack", limit)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Allowed)

	res, err = limiter.Allow(context.Background(), "slack", limit)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Allowed)
	assert.Positive(t, res.RetryAfter)
}
