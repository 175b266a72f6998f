package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository  = (*ItemRepo)(nil)
	_ repository.OrderRepository = (*OrderRepo)(nil)
)

// ItemRepo lectura del catálogo de ítems.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var (
		it        entity.Item
		companyID *string
	)
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, code, name, unit_weight FROM items WHERE id = $1`, id).
		Scan(&it.ID, &companyID, &it.Code, &it.Name, &it.UnitWeight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	it.CompanyID = deref(companyID)
	return &it, nil
}

// OrderRepo lectura de pedidos.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene un pedido por ID; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var (
		o          entity.Order
		customerID *string
	)
	err := r.q.QueryRow(ctx, `SELECT id, project_id, customer_id FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.ProjectID, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.CustomerID = deref(customerID)
	return &o, nil
}
