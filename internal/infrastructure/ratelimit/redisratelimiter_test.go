package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLimiter(t *testing.T) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateLimiter(client), mr
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	limiter, _ := setupTestLimiter(t)
	ctx := context.Background()
	limits := Limits{PerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login:10.0.0.1", limits)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:10.0.0.1", limits)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "login:10.0.0.2", limits)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are unaffected")
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	limiter, _ := setupTestLimiter(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k", Limits{PerMinute: 2})
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k", Limits{PerMinute: 2})
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return base.Add(61 * time.Second) }
	allowed, err = limiter.Allow(ctx, "k", Limits{PerMinute: 2})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_PerHourApplies(t *testing.T) {
	limiter, _ := setupTestLimiter(t)
	ctx := context.Background()
	limits := Limits{PerMinute: 100, PerHour: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "k", limits)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k", limits)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_RemainingAndReset(t *testing.T) {
	limiter, _ := setupTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "k", Limits{PerMinute: 10})
		require.NoError(t, err)
	}

	remaining, err := limiter.Remaining(ctx, "k", time.Minute, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 7, remaining)

	require.NoError(t, limiter.Reset(ctx, "k"))

	remaining, err = limiter.Remaining(ctx, "k", time.Minute, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 10, remaining)
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	limiter, mr := setupTestLimiter(t)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", Limits{PerMinute: 1})
	assert.Error(t, err)
}
