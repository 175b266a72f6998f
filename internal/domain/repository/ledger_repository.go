package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// LedgerRepository puerto del libro de movimientos (solo inserción).
type LedgerRepository interface {
	CreateMovement(ctx context.Context, movement *entity.Movement) error
	// AppendEntry persiste la entrada y sus características adicionales.
	AppendEntry(ctx context.Context, entry *entity.LedgerEntry) error
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.LedgerEntry, error)
	// SumByVariant Σ de cantidades firmadas por variante del ítem.
	SumByVariant(ctx context.Context, itemID string) (map[entity.VariantKey]int64, error)
}
