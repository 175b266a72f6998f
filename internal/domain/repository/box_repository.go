package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// BoxRepository puerto de cajas.
type BoxRepository interface {
	Create(ctx context.Context, box *entity.Box) error
	GetByID(ctx context.Context, id string) (*entity.Box, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Box, error)
	UpdateTotals(ctx context.Context, box *entity.Box) error
	// SetDeliveryNote re-vincula la caja; noteID vacío la desvincula.
	SetDeliveryNote(ctx context.Context, boxID, noteID string) error
	Delete(ctx context.Context, id string) error
	ListByDeliveryNote(ctx context.Context, noteID string) ([]*entity.Box, error)
}

// BoxItemRepository puerto de las asignaciones (ítems de caja).
type BoxItemRepository interface {
	Create(ctx context.Context, item *entity.BoxItem) error
	GetByID(ctx context.Context, id string) (*entity.BoxItem, error)
	GetForUpdate(ctx context.Context, id string) (*entity.BoxItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
	// ListByBox devuelve las asignaciones con el peso unitario del ítem.
	ListByBox(ctx context.Context, boxID string) ([]*entity.BoxItem, error)
	ListByOrderItem(ctx context.Context, orderItemID string) ([]*entity.BoxItem, error)
	// SumAllocated Σ asignado para (orderItemID, featureOptionID), leído en vivo.
	SumAllocated(ctx context.Context, orderItemID, featureOptionID string) (int64, error)
	// SumByVariant Σ asignado por variante del ítem.
	SumByVariant(ctx context.Context, itemID string) (map[entity.VariantKey]int64, error)
}

// DeliveryNoteRepository puerto de remitos y su tabla de unión con cajas.
type DeliveryNoteRepository interface {
	Create(ctx context.Context, note *entity.DeliveryNote) error
	GetByID(ctx context.Context, id string) (*entity.DeliveryNote, error)
	GetForUpdate(ctx context.Context, id string) (*entity.DeliveryNote, error)
	UpdateTotals(ctx context.Context, note *entity.DeliveryNote) error
	Delete(ctx context.Context, id string) error
	LinkBox(ctx context.Context, noteID, boxID string) error
	UnlinkBox(ctx context.Context, noteID, boxID string) error
}
