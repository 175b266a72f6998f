//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/infrastructure/cache"
	"github.com/jhoicas/logistica-api/pkg/config"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return config.RedisConfig{Addr: endpoint}
}

func TestRedisStockCache(t *testing.T) {
	ctx := context.Background()
	client, err := cache.NewRedisClient(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisStockCache(client, time.Minute)
	_, ok := c.Get(ctx, "item-1")
	assert.False(t, ok)

	snap := &ports.StockSnapshot{ItemID: "item-1", Quantity: 12, Variants: []ports.VariantSnapshot{{Quantity: 12}}}
	c.Set(ctx, snap)
	got, ok := c.Get(ctx, "item-1")
	require.True(t, ok)
	assert.Equal(t, snap, got)

	c.Invalidate(ctx, "item-1", "item-2")
	_, ok = c.Get(ctx, "item-1")
	assert.False(t, ok)
}

func TestRedisIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	client, err := cache.NewRedisClient(ctx, startRedis(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s := cache.NewRedisIdempotencyStore(client)
	ok, err := s.MarkProcessed(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.MarkProcessed(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	seen, err := s.IsProcessed(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, seen)
}
