package repository

import (
	"context"
	"time"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// ProductionOrderRepository puerto de órdenes de producción, sus líneas y estados.
type ProductionOrderRepository interface {
	Create(ctx context.Context, po *entity.ProductionOrder) error
	CreateItem(ctx context.Context, item *entity.ProductionOrderItem) error
	GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.ProductionOrder, error)
	ListItems(ctx context.Context, poID string) ([]*entity.ProductionOrderItem, error)
	// AddDelivered incrementa delivered_quantity y devuelve el nuevo valor.
	AddDelivered(ctx context.Context, id string, delta int64) (int64, error)
	SetCloseDate(ctx context.Context, id string, at time.Time) error
	CreateStatus(ctx context.Context, status *entity.ProductionOrderStatus) error
	ListStatuses(ctx context.Context, poID string) ([]*entity.ProductionOrderStatus, error)
	// LatestStatusesByProject devuelve el estado vigente de cada orden del proyecto.
	LatestStatusesByProject(ctx context.Context, projectID string) ([]*entity.ProductionOrderStatus, error)
	// LockByProject toma un bloqueo compartido sobre las órdenes del proyecto hasta el fin de la
	// transacción; un cambio de estado concurrente espera o se espera.
	LockByProject(ctx context.Context, projectID string) error
}
