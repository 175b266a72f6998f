package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo registros de demanda sobre PostgreSQL.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

const orderItemColumns = `id, order_id, item_id, item_feature_id, feature_option_id, quantity, created_at, updated_at`

func scanOrderItem(row scanner) (*entity.OrderItem, error) {
	var (
		oi        entity.OrderItem
		itemID    string
		featureID *string
		optionID  *string
	)
	if err := row.Scan(&oi.ID, &oi.OrderID, &itemID, &featureID, &optionID, &oi.Quantity, &oi.CreatedAt, &oi.UpdatedAt); err != nil {
		return nil, err
	}
	oi.Key = keyFrom(itemID, featureID, optionID)
	return &oi, nil
}

func (r *OrderItemRepo) getOne(ctx context.Context, sql string, args ...any) (*entity.OrderItem, error) {
	oi, err := scanOrderItem(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return oi, nil
}

// GetByID obtiene la demanda por ID; nil si no existe.
func (r *OrderItemRepo) GetByID(ctx context.Context, id string) (*entity.OrderItem, error) {
	return r.getOne(ctx, `SELECT `+orderItemColumns+` FROM order_items WHERE id = $1`, id)
}

// GetForUpdate obtiene la demanda y bloquea la fila.
func (r *OrderItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.OrderItem, error) {
	return r.getOne(ctx, `SELECT `+orderItemColumns+` FROM order_items WHERE id = $1 FOR UPDATE`, id)
}

// FindForUpdate busca la demanda de (pedido, variante) y la bloquea.
func (r *OrderItemRepo) FindForUpdate(ctx context.Context, orderID string, key entity.VariantKey) (*entity.OrderItem, error) {
	itemID, featureID, optionID := keyArgs(key)
	return r.getOne(ctx, `
		SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id = $1 AND item_id = $2
		  AND item_feature_id IS NOT DISTINCT FROM $3::uuid
		  AND feature_option_id IS NOT DISTINCT FROM $4::uuid
		FOR UPDATE`, orderID, itemID, featureID, optionID)
}

// Upsert crea la demanda o suma la cantidad a la existente (índice único sobre la variante).
func (r *OrderItemRepo) Upsert(ctx context.Context, item *entity.OrderItem) (*entity.OrderItem, error) {
	id := item.ID
	if id == "" {
		id = uuid.New().String()
	}
	itemID, featureID, optionID := keyArgs(item.Key)
	now := time.Now()
	oi, err := scanOrderItem(r.q.QueryRow(ctx, `
		INSERT INTO order_items (id, order_id, item_id, item_feature_id, feature_option_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (order_id, item_id,
		             (COALESCE(item_feature_id, '00000000-0000-0000-0000-000000000000'::uuid)),
		             (COALESCE(feature_option_id, '00000000-0000-0000-0000-000000000000'::uuid)))
		DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING `+orderItemColumns,
		id, item.OrderID, itemID, featureID, optionID, item.Quantity, now))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("pedido o ítem", item.OrderID)
		}
		return nil, fmt.Errorf("upsert order item: %w", err)
	}
	return oi, nil
}

// CreateIfAbsent inserta la demanda; si otra transacción ya creó la de (pedido, variante) no toca su cantidad.
func (r *OrderItemRepo) CreateIfAbsent(ctx context.Context, item *entity.OrderItem) error {
	id := item.ID
	if id == "" {
		id = uuid.New().String()
	}
	itemID, featureID, optionID := keyArgs(item.Key)
	_, err := r.q.Exec(ctx, `
		INSERT INTO order_items (id, order_id, item_id, item_feature_id, feature_option_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (order_id, item_id,
		             (COALESCE(item_feature_id, '00000000-0000-0000-0000-000000000000'::uuid)),
		             (COALESCE(feature_option_id, '00000000-0000-0000-0000-000000000000'::uuid)))
		DO NOTHING`,
		id, item.OrderID, itemID, featureID, optionID, item.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("pedido o ítem", item.OrderID)
		}
		return fmt.Errorf("create order item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad pedida.
func (r *OrderItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE order_items SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("ítem de pedido", id)
	}
	return nil
}

// Delete elimina la demanda. box_items la referencia con ON DELETE RESTRICT.
func (r *OrderItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("el ítem de pedido tiene asignaciones")
		}
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// ListByOrder lista la demanda del pedido en orden de creación.
func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	out := []*entity.OrderItem{}
	for rows.Next() {
		oi, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, oi)
	}
	return out, rows.Err()
}
