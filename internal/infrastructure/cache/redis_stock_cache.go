package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

var _ ports.StockCache = (*RedisStockCache)(nil)

const stockKeyPrefix = "stock:item:"

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

// RedisStockCache caché de lectura de saldos por ítem (JSON con TTL).
// Los fallos de Redis se registran y se tratan como miss: la caché nunca rompe una operación.
type RedisStockCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStockCache construye la caché; ttl <= 0 usa 30s.
func NewRedisStockCache(client *redis.Client, ttl time.Duration) *RedisStockCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisStockCache{client: client, ttl: ttl}
}

func (c *RedisStockCache) Get(ctx context.Context, itemID string) (*ports.StockSnapshot, bool) {
	raw, err := c.client.Get(ctx, stockKeyPrefix+itemID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Warn().Err(err).Str("item_id", itemID).Msg("stock cache get")
		}
		return nil, false
	}
	var snap ports.StockSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("item_id", itemID).Msg("stock cache: entrada corrupta")
		return nil, false
	}
	return &snap, true
}

func (c *RedisStockCache) Set(ctx context.Context, snap *ports.StockSnapshot) {
	if snap == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, stockKeyPrefix+snap.ItemID, raw, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("item_id", snap.ItemID).Msg("stock cache set")
	}
}

// Invalidate borra las entradas de los ítems; se llama después del commit.
func (c *RedisStockCache) Invalidate(ctx context.Context, itemIDs ...string) {
	if len(itemIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		keys = append(keys, stockKeyPrefix+id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Strs("item_ids", itemIDs).Msg("stock cache invalidate")
	}
}
