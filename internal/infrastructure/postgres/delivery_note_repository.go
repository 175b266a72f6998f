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

var _ repository.DeliveryNoteRepository = (*DeliveryNoteRepo)(nil)

// DeliveryNoteRepo remitos y tabla de unión delivery_note_boxes.
type DeliveryNoteRepo struct {
	q Querier
}

// NewDeliveryNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryNoteRepository(q Querier) *DeliveryNoteRepo {
	return &DeliveryNoteRepo{q: q}
}

const noteColumns = `id, invoice_id, project_id, customer_id, order_id, expedition_id, box_quantity, total_quantity, total_weight, created_at`

func scanNote(row scanner) (*entity.DeliveryNote, error) {
	var (
		n                                           entity.DeliveryNote
		invoiceID, customerID, orderID, expedition *string
	)
	if err := row.Scan(&n.ID, &invoiceID, &n.ProjectID, &customerID, &orderID, &expedition,
		&n.BoxQuantity, &n.TotalQuantity, &n.TotalWeight, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.InvoiceID = deref(invoiceID)
	n.CustomerID = deref(customerID)
	n.OrderID = deref(orderID)
	n.ExpeditionID = deref(expedition)
	return &n, nil
}

// Create inserta el remito con totales en cero.
func (r *DeliveryNoteRepo) Create(ctx context.Context, n *entity.DeliveryNote) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO delivery_notes (`+noteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, nullable(n.InvoiceID), n.ProjectID, nullable(n.CustomerID), nullable(n.OrderID),
		nullable(n.ExpeditionID), n.BoxQuantity, n.TotalQuantity, n.TotalWeight, n.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("proyecto o pedido", n.ProjectID)
		}
		return fmt.Errorf("create delivery note: %w", err)
	}
	return nil
}

func (r *DeliveryNoteRepo) getOne(ctx context.Context, sql, id string) (*entity.DeliveryNote, error) {
	n, err := scanNote(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery note: %w", err)
	}
	return n, nil
}

// GetByID obtiene el remito; nil si no existe.
func (r *DeliveryNoteRepo) GetByID(ctx context.Context, id string) (*entity.DeliveryNote, error) {
	return r.getOne(ctx, `SELECT `+noteColumns+` FROM delivery_notes WHERE id = $1`, id)
}

// GetForUpdate obtiene el remito y bloquea la fila.
func (r *DeliveryNoteRepo) GetForUpdate(ctx context.Context, id string) (*entity.DeliveryNote, error) {
	return r.getOne(ctx, `SELECT `+noteColumns+` FROM delivery_notes WHERE id = $1 FOR UPDATE`, id)
}

// UpdateTotals persiste los totales recalculados.
func (r *DeliveryNoteRepo) UpdateTotals(ctx context.Context, n *entity.DeliveryNote) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE delivery_notes SET box_quantity = $2, total_quantity = $3, total_weight = $4 WHERE id = $1`,
		n.ID, n.BoxQuantity, n.TotalQuantity, n.TotalWeight)
	if err != nil {
		return fmt.Errorf("update delivery note totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("remito", n.ID)
	}
	return nil
}

// Delete elimina el remito. La unión cae en CASCADE y boxes.delivery_note_id queda en NULL.
func (r *DeliveryNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM delivery_notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete delivery note: %w", err)
	}
	return nil
}

// LinkBox agrega la caja a la unión. Re-vincular al mismo remito no hace nada;
// una caja en otro remito viola el índice único sobre box_id.
func (r *DeliveryNoteRepo) LinkBox(ctx context.Context, noteID, boxID string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO delivery_note_boxes (delivery_note_id, box_id)
		VALUES ($1, $2)
		ON CONFLICT (delivery_note_id, box_id) DO NOTHING`, noteID, boxID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("la caja ya pertenece a otro remito")
		}
		if isForeignKeyViolation(err) {
			return domain.NotFound("remito o caja", noteID)
		}
		return fmt.Errorf("link box: %w", err)
	}
	return nil
}

// UnlinkBox quita la caja de la unión.
func (r *DeliveryNoteRepo) UnlinkBox(ctx context.Context, noteID, boxID string) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM delivery_note_boxes WHERE delivery_note_id = $1 AND box_id = $2`, noteID, boxID)
	if err != nil {
		return fmt.Errorf("unlink box: %w", err)
	}
	return nil
}
