package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_Allow(t *testing.T) {
	// Arrange
	limiter := NewTokenBucket(2, time.Minute)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	// Act & Assert: емкость ведра
	for range 2 {
		decision, err := limiter.Allow(ctx, "user:a")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}

	decision, err := limiter.Allow(ctx, "user:a")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.InDelta(t, float64(30*time.Second), float64(decision.RetryAfter), float64(time.Millisecond))

	// Отклоненный запрос не расходует токен
	now = now.Add(31 * time.Second)
	decision, err = limiter.Allow(ctx, "user:a")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestTokenBucket_IdleCleanup(t *testing.T) {
	limiter := NewTokenBucket(1, time.Second)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	_, err := limiter.Allow(context.Background(), "ip:old")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = limiter.Allow(context.Background(), "ip:new")
	require.NoError(t, err)

	assert.NotContains(t, limiter.entries, "ip:old")
}

func TestUnlimited(t *testing.T) {
	decision, err := Unlimited{}.Allow(context.Background(), "anything")

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}
