package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// OrderRepository lectura de pedidos (CRUD externo).
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}

// OrderItemRepository puerto de los registros de demanda.
type OrderItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.OrderItem, error)
	GetForUpdate(ctx context.Context, id string) (*entity.OrderItem, error)
	// FindForUpdate busca la demanda de (pedido, variante) y la bloquea; nil si no existe.
	FindForUpdate(ctx context.Context, orderID string, key entity.VariantKey) (*entity.OrderItem, error)
	// Upsert crea la demanda o incrementa la existente para (pedido, variante) y devuelve el registro.
	Upsert(ctx context.Context, item *entity.OrderItem) (*entity.OrderItem, error)
	// CreateIfAbsent crea la demanda solo si (pedido, variante) no tiene registro; nunca suma.
	CreateIfAbsent(ctx context.Context, item *entity.OrderItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
	ListByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
}
