package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/logistica-api/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL (read committed).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repos devuelve repositorios sobre el pool (lecturas fuera de transacción).
func (r *TxRunner) Repos() ports.Repositories {
	return NewRepositories(r.pool)
}

// NewRepositories arma todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepositories(q Querier) ports.Repositories {
	return ports.Repositories{
		Items:            NewItemRepository(q),
		Stock:            NewStockRepository(q),
		Ledger:           NewLedgerRepository(q),
		Orders:           NewOrderRepository(q),
		OrderItems:       NewOrderItemRepository(q),
		Boxes:            NewBoxRepository(q),
		BoxItems:         NewBoxItemRepository(q),
		DeliveryNotes:    NewDeliveryNoteRepository(q),
		ProductionOrders: NewProductionOrderRepository(q),
	}
}
