package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryIdempotencyStore()
	s.now = func() time.Time { return now }

	ok, err := s.MarkProcessed(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.MarkProcessed(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "segunda marca debe detectarse como duplicada")

	seen, err := s.IsProcessed(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, seen)

	now = now.Add(2 * time.Minute)
	seen, err = s.IsProcessed(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, seen, "la clave vencida no cuenta")

	ok, err = s.MarkProcessed(ctx, "k1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	s.Release(ctx, "k1")
	seen, err = s.IsProcessed(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, seen)
}
