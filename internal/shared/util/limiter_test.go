package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Burst(t *testing.T) {
	l := NewLimiter(10, 2)
	require.NotNil(t, l)

	assert.True(t, l.Allow(1), "first token")
	assert.True(t, l.Allow(1), "second token (burst)")
	assert.False(t, l.Allow(1), "burst exhausted")

	time.Sleep(150 * time.Millisecond)
	assert.True(t, l.Allow(1), "refilled after wait")
}

func TestLimiter_DisabledIsNil(t *testing.T) {
	l := NewLimiter(0, 5)
	assert.Nil(t, l)
	assert.True(t, l.Allow(100))
	assert.NoError(t, l.Wait(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx, 1), context.Canceled)
}

func TestLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(2.5, 0)
	require.NotNil(t, l)
	assert.True(t, l.Allow(3))
	assert.False(t, l.Allow(1))
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)
	l.Allow(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	require.NoError(t, l.Wait(ctx, 1))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
