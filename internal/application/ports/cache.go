package ports

import (
	"context"
	"time"
)

// StockSnapshot vista de lectura del saldo de un ítem (lo que se cachea).
type StockSnapshot struct {
	ItemID   string            `json:"item_id"`
	Quantity int64             `json:"quantity"`
	Variants []VariantSnapshot `json:"variants"`
}

// VariantSnapshot saldo de una variante dentro de StockSnapshot.
type VariantSnapshot struct {
	ItemFeatureID   string `json:"item_feature_id,omitempty"`
	FeatureOptionID string `json:"feature_option_id,omitempty"`
	Quantity        int64  `json:"quantity"`
}

// StockCache caché de lectura de saldos. Nunca se usa para validar precondiciones:
// esas lecturas van siempre contra la transacción.
type StockCache interface {
	Get(ctx context.Context, itemID string) (*StockSnapshot, bool)
	Set(ctx context.Context, snap *StockSnapshot)
	Invalidate(ctx context.Context, itemIDs ...string)
}

// IdempotencyStore registra claves de solicitudes ya procesadas.
type IdempotencyStore interface {
	IsProcessed(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release libera la clave (la operación falló y el cliente puede reintentar).
	Release(ctx context.Context, key string)
}

// NoopStockCache caché deshabilitada.
type NoopStockCache struct{}

func (NoopStockCache) Get(context.Context, string) (*StockSnapshot, bool) { return nil, false }
func (NoopStockCache) Set(context.Context, *StockSnapshot)                {}
func (NoopStockCache) Invalidate(context.Context, ...string)              {}

var _ StockCache = NoopStockCache{}
