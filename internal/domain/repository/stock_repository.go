package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// StockRepository define el puerto para los saldos por ítem y por variante.
// Usado dentro de transacciones; las lecturas ForUpdate bloquean la fila hasta el commit.
type StockRepository interface {
	// GetOrCreateItemStock devuelve el saldo del ítem, creándolo en 0 si no existe.
	GetOrCreateItemStock(ctx context.Context, itemID string) (*entity.ItemStock, error)
	GetItemStock(ctx context.Context, itemID string) (*entity.ItemStock, error)

	// GetVariantForUpdate devuelve la fila de la variante bloqueada (SELECT FOR UPDATE) o nil si no existe.
	GetVariantForUpdate(ctx context.Context, key entity.VariantKey) (*entity.VariantStock, error)
	// CreateVariant crea la fila en 0 (idempotente ante creación concurrente) y la devuelve bloqueada.
	CreateVariant(ctx context.Context, stockID string, key entity.VariantKey) (*entity.VariantStock, error)
	// AddToVariant aplica un delta firmado y devuelve el saldo resultante.
	AddToVariant(ctx context.Context, variantID string, delta int64) (int64, error)
	// RecomputeItemStock fija el saldo del ítem como Σ de sus variantes y lo devuelve.
	RecomputeItemStock(ctx context.Context, stockID string) (int64, error)
	ListVariants(ctx context.Context, stockID string) ([]*entity.VariantStock, error)

	// LinkFeature vincula un par adicional a la fila de variante; no duplica vínculos existentes.
	LinkFeature(ctx context.Context, variantStockID string, pair entity.FeaturePair) error
	ListFeatures(ctx context.Context, variantStockID string) ([]*entity.StockFeature, error)
}
