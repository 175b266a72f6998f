package ports

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// Repositories agrupa los repositorios atados a una misma transacción (o al pool en lecturas).
type Repositories struct {
	Items            repository.ItemRepository
	Stock            repository.StockRepository
	Ledger           repository.LedgerRepository
	Orders           repository.OrderRepository
	OrderItems       repository.OrderItemRepository
	Boxes            repository.BoxRepository
	BoxItems         repository.BoxItemRepository
	DeliveryNotes    repository.DeliveryNoteRepository
	ProductionOrders repository.ProductionOrderRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y ningún cambio es visible; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repositories) error) error
	// Repos devuelve repositorios fuera de transacción para lecturas.
	Repos() Repositories
}
