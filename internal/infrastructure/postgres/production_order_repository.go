package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

// ProductionOrderRepo órdenes de producción, líneas y estados.
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

const poColumns = `id, project_id, planned_quantity, delivered_quantity, close_date, created_at`

func (r *ProductionOrderRepo) Create(ctx context.Context, po *entity.ProductionOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_orders (`+poColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		po.ID, po.ProjectID, po.PlannedQuantity, po.DeliveredQuantity, po.CloseDate, po.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("proyecto", po.ProjectID)
		}
		return fmt.Errorf("create production order: %w", err)
	}
	return nil
}

func (r *ProductionOrderRepo) CreateItem(ctx context.Context, it *entity.ProductionOrderItem) error {
	itemID, featureID, optionID := keyArgs(it.Key)
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_order_items (id, production_order_id, item_id, item_feature_id, feature_option_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		it.ID, it.ProductionOrderID, itemID, featureID, optionID, it.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("ítem", itemID)
		}
		return fmt.Errorf("create production order item: %w", err)
	}
	return nil
}

func (r *ProductionOrderRepo) getOne(ctx context.Context, sql, id string) (*entity.ProductionOrder, error) {
	var po entity.ProductionOrder
	err := r.q.QueryRow(ctx, sql, id).
		Scan(&po.ID, &po.ProjectID, &po.PlannedQuantity, &po.DeliveredQuantity, &po.CloseDate, &po.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return &po, nil
}

func (r *ProductionOrderRepo) GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	return r.getOne(ctx, `SELECT `+poColumns+` FROM production_orders WHERE id = $1`, id)
}

func (r *ProductionOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	return r.getOne(ctx, `SELECT `+poColumns+` FROM production_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductionOrderRepo) ListItems(ctx context.Context, poID string) ([]*entity.ProductionOrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, production_order_id, item_id, item_feature_id, feature_option_id, quantity
		FROM production_order_items WHERE production_order_id = $1 ORDER BY id`, poID)
	if err != nil {
		return nil, fmt.Errorf("list production order items: %w", err)
	}
	defer rows.Close()
	out := []*entity.ProductionOrderItem{}
	for rows.Next() {
		var (
			it        entity.ProductionOrderItem
			itemID    string
			featureID *string
			optionID  *string
		)
		if err := rows.Scan(&it.ID, &it.ProductionOrderID, &itemID, &featureID, &optionID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan production order item: %w", err)
		}
		it.Key = keyFrom(itemID, featureID, optionID)
		out = append(out, &it)
	}
	return out, rows.Err()
}

// AddDelivered incrementa delivered_quantity y devuelve el nuevo valor.
func (r *ProductionOrderRepo) AddDelivered(ctx context.Context, id string, delta int64) (int64, error) {
	var delivered int64
	err := r.q.QueryRow(ctx, `
		UPDATE production_orders SET delivered_quantity = delivered_quantity + $2
		WHERE id = $1 RETURNING delivered_quantity`, id, delta).Scan(&delivered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound("orden de producción", id)
		}
		return 0, fmt.Errorf("add delivered: %w", err)
	}
	return delivered, nil
}

func (r *ProductionOrderRepo) SetCloseDate(ctx context.Context, id string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE production_orders SET close_date = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("set close date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("orden de producción", id)
	}
	return nil
}

func (r *ProductionOrderRepo) CreateStatus(ctx context.Context, s *entity.ProductionOrderStatus) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_order_statuses (id, production_order_id, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.ProductionOrderID, s.Status, s.UserID, s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("orden de producción", s.ProductionOrderID)
		}
		return fmt.Errorf("create production order status: %w", err)
	}
	return nil
}

func scanStatuses(rows pgx.Rows) ([]*entity.ProductionOrderStatus, error) {
	defer rows.Close()
	out := []*entity.ProductionOrderStatus{}
	for rows.Next() {
		var s entity.ProductionOrderStatus
		if err := rows.Scan(&s.ID, &s.ProductionOrderID, &s.Status, &s.UserID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production order status: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// ListStatuses historial de estados, más antiguo primero.
func (r *ProductionOrderRepo) ListStatuses(ctx context.Context, poID string) ([]*entity.ProductionOrderStatus, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, production_order_id, status, user_id, created_at
		FROM production_order_statuses WHERE production_order_id = $1
		ORDER BY created_at, id`, poID)
	if err != nil {
		return nil, fmt.Errorf("list production order statuses: %w", err)
	}
	return scanStatuses(rows)
}

// LockByProject FOR SHARE sobre las órdenes del proyecto. ChangeStatus toma FOR UPDATE sobre la
// orden, así que ambos se serializan.
func (r *ProductionOrderRepo) LockByProject(ctx context.Context, projectID string) error {
	rows, err := r.q.Query(ctx, `
		SELECT id FROM production_orders WHERE project_id = $1 ORDER BY id FOR SHARE`, projectID)
	if err != nil {
		return fmt.Errorf("lock production orders: %w", err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock production orders: %w", err)
	}
	return nil
}

// LatestStatusesByProject estado vigente (created_at más reciente) de cada orden del proyecto.
func (r *ProductionOrderRepo) LatestStatusesByProject(ctx context.Context, projectID string) ([]*entity.ProductionOrderStatus, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT ON (s.production_order_id)
		       s.id, s.production_order_id, s.status, s.user_id, s.created_at
		FROM production_order_statuses s
		JOIN production_orders po ON po.id = s.production_order_id
		WHERE po.project_id = $1
		ORDER BY s.production_order_id, s.created_at DESC, s.id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("latest statuses by project: %w", err)
	}
	return scanStatuses(rows)
}
