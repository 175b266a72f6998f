package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var (
	_ repository.BoxRepository     = (*BoxRepo)(nil)
	_ repository.BoxItemRepository = (*BoxItemRepo)(nil)
)

// BoxRepo cajas sobre PostgreSQL.
type BoxRepo struct {
	q Querier
}

// NewBoxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBoxRepository(q Querier) *BoxRepo {
	return &BoxRepo{q: q}
}

const boxColumns = `id, delivery_note_id, project_id, customer_id, order_id, package_id, user_id, total_quantity, total_weight, created_at`

func scanBox(row scanner) (*entity.Box, error) {
	var (
		b                                       entity.Box
		noteID, customerID, orderID, packageID *string
	)
	if err := row.Scan(&b.ID, &noteID, &b.ProjectID, &customerID, &orderID, &packageID, &b.UserID,
		&b.TotalQuantity, &b.TotalWeight, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.DeliveryNoteID = deref(noteID)
	b.CustomerID = deref(customerID)
	b.OrderID = deref(orderID)
	b.PackageID = deref(packageID)
	return &b, nil
}

// Create inserta la caja vacía.
func (r *BoxRepo) Create(ctx context.Context, b *entity.Box) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO boxes (`+boxColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, nullable(b.DeliveryNoteID), b.ProjectID, nullable(b.CustomerID), nullable(b.OrderID),
		nullable(b.PackageID), b.UserID, b.TotalQuantity, b.TotalWeight, b.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("proyecto, pedido o remito", b.ProjectID)
		}
		return fmt.Errorf("create box: %w", err)
	}
	return nil
}

func (r *BoxRepo) getOne(ctx context.Context, sql, id string) (*entity.Box, error) {
	b, err := scanBox(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box: %w", err)
	}
	return b, nil
}

// GetByID obtiene la caja; nil si no existe.
func (r *BoxRepo) GetByID(ctx context.Context, id string) (*entity.Box, error) {
	return r.getOne(ctx, `SELECT `+boxColumns+` FROM boxes WHERE id = $1`, id)
}

// GetForUpdate obtiene la caja y bloquea la fila.
func (r *BoxRepo) GetForUpdate(ctx context.Context, id string) (*entity.Box, error) {
	return r.getOne(ctx, `SELECT `+boxColumns+` FROM boxes WHERE id = $1 FOR UPDATE`, id)
}

// UpdateTotals persiste los totales recalculados.
func (r *BoxRepo) UpdateTotals(ctx context.Context, b *entity.Box) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE boxes SET total_quantity = $2, total_weight = $3 WHERE id = $1`,
		b.ID, b.TotalQuantity, b.TotalWeight)
	if err != nil {
		return fmt.Errorf("update box totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("caja", b.ID)
	}
	return nil
}

// SetDeliveryNote re-vincula la caja; noteID vacío la desvincula.
func (r *BoxRepo) SetDeliveryNote(ctx context.Context, boxID, noteID string) error {
	tag, err := r.q.Exec(ctx, `UPDATE boxes SET delivery_note_id = $2 WHERE id = $1`, boxID, nullable(noteID))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("remito", noteID)
		}
		return fmt.Errorf("set box delivery note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("caja", boxID)
	}
	return nil
}

// Delete elimina la caja. Falla con conflicto si aún tiene asignaciones (RESTRICT).
func (r *BoxRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM boxes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Conflict("la caja tiene asignaciones")
		}
		return fmt.Errorf("delete box: %w", err)
	}
	return nil
}

// ListByDeliveryNote lista las cajas vinculadas al remito.
func (r *BoxRepo) ListByDeliveryNote(ctx context.Context, noteID string) ([]*entity.Box, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+boxColumns+` FROM boxes WHERE delivery_note_id = $1 ORDER BY id`, noteID)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	defer rows.Close()
	out := []*entity.Box{}
	for rows.Next() {
		b, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// BoxItemRepo asignaciones sobre PostgreSQL. Las lecturas traen el peso unitario del ítem.
type BoxItemRepo struct {
	q Querier
}

// NewBoxItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBoxItemRepository(q Querier) *BoxItemRepo {
	return &BoxItemRepo{q: q}
}

const boxItemSelect = `
	SELECT bi.id, bi.box_id, bi.order_item_id, bi.item_id, bi.item_feature_id, bi.feature_option_id,
	       bi.quantity, bi.user_id, i.unit_weight, bi.created_at, bi.updated_at
	FROM box_items bi
	JOIN items i ON i.id = bi.item_id`

func scanBoxItem(row scanner) (*entity.BoxItem, error) {
	var (
		bi        entity.BoxItem
		itemID    string
		featureID *string
		optionID  *string
	)
	if err := row.Scan(&bi.ID, &bi.BoxID, &bi.OrderItemID, &itemID, &featureID, &optionID,
		&bi.Quantity, &bi.UserID, &bi.UnitWeight, &bi.CreatedAt, &bi.UpdatedAt); err != nil {
		return nil, err
	}
	bi.Key = keyFrom(itemID, featureID, optionID)
	return &bi, nil
}

// Create inserta la asignación.
func (r *BoxItemRepo) Create(ctx context.Context, bi *entity.BoxItem) error {
	itemID, featureID, optionID := keyArgs(bi.Key)
	_, err := r.q.Exec(ctx, `
		INSERT INTO box_items (id, box_id, order_item_id, item_id, item_feature_id, feature_option_id, quantity, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		bi.ID, bi.BoxID, bi.OrderItemID, itemID, featureID, optionID, bi.Quantity, bi.UserID, bi.CreatedAt, bi.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("caja o ítem de pedido", bi.BoxID)
		}
		return fmt.Errorf("create box item: %w", err)
	}
	return nil
}

func (r *BoxItemRepo) getOne(ctx context.Context, sql, id string) (*entity.BoxItem, error) {
	bi, err := scanBoxItem(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box item: %w", err)
	}
	return bi, nil
}

// GetByID obtiene la asignación; nil si no existe.
func (r *BoxItemRepo) GetByID(ctx context.Context, id string) (*entity.BoxItem, error) {
	return r.getOne(ctx, boxItemSelect+` WHERE bi.id = $1`, id)
}

// GetForUpdate obtiene la asignación y bloquea solo su fila (no la del ítem).
func (r *BoxItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.BoxItem, error) {
	return r.getOne(ctx, boxItemSelect+` WHERE bi.id = $1 FOR UPDATE OF bi`, id)
}

// UpdateQuantity fija la cantidad asignada.
func (r *BoxItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE box_items SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update box item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("asignación", id)
	}
	return nil
}

// Delete elimina la asignación.
func (r *BoxItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM box_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete box item: %w", err)
	}
	return nil
}

func (r *BoxItemRepo) list(ctx context.Context, where, arg string) ([]*entity.BoxItem, error) {
	rows, err := r.q.Query(ctx, boxItemSelect+` WHERE `+where+` ORDER BY bi.created_at, bi.id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list box items: %w", err)
	}
	defer rows.Close()
	out := []*entity.BoxItem{}
	for rows.Next() {
		bi, err := scanBoxItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan box item: %w", err)
		}
		out = append(out, bi)
	}
	return out, rows.Err()
}

// ListByBox lista las asignaciones de la caja.
func (r *BoxItemRepo) ListByBox(ctx context.Context, boxID string) ([]*entity.BoxItem, error) {
	return r.list(ctx, `bi.box_id = $1`, boxID)
}

// ListByOrderItem lista las asignaciones de una demanda.
func (r *BoxItemRepo) ListByOrderItem(ctx context.Context, orderItemID string) ([]*entity.BoxItem, error) {
	return r.list(ctx, `bi.order_item_id = $1`, orderItemID)
}

// SumAllocated Σ asignado para (demanda, opción), siempre leído en vivo.
func (r *BoxItemRepo) SumAllocated(ctx context.Context, orderItemID, featureOptionID string) (int64, error) {
	var sum int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)::bigint FROM box_items
		WHERE order_item_id = $1 AND feature_option_id IS NOT DISTINCT FROM $2::uuid`,
		orderItemID, nullable(featureOptionID)).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum allocated: %w", err)
	}
	return sum, nil
}

// SumByVariant Σ asignado por variante del ítem.
func (r *BoxItemRepo) SumByVariant(ctx context.Context, itemID string) (map[entity.VariantKey]int64, error) {
	return sumByVariant(ctx, r.q, `
		SELECT item_id, item_feature_id, feature_option_id, SUM(quantity)::bigint
		FROM box_items WHERE item_id = $1
		GROUP BY item_id, item_feature_id, feature_option_id`, itemID)
}
