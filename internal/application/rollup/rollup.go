// Package rollup recalcula los totales de cajas y remitos desde sus hijos, dentro de la transacción.
package rollup

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
)

// Box bloquea la caja, vuelve a leer sus asignaciones y persiste los totales.
// Si la caja está en un remito, también recalcula el remito.
func Box(ctx context.Context, r ports.Repositories, boxID string) (*entity.Box, *entity.DeliveryNote, error) {
	box, err := r.Boxes.GetForUpdate(ctx, boxID)
	if err != nil {
		return nil, nil, err
	}
	if box == nil {
		return nil, nil, domain.NotFound("caja", boxID)
	}
	items, err := r.BoxItems.ListByBox(ctx, boxID)
	if err != nil {
		return nil, nil, err
	}
	inventory.ApplyBoxTotals(box, inventory.RollupBox(items))
	if err := r.Boxes.UpdateTotals(ctx, box); err != nil {
		return nil, nil, err
	}
	if !box.InDeliveryNote() {
		return box, nil, nil
	}
	note, err := DeliveryNote(ctx, r, box.DeliveryNoteID)
	if err != nil {
		return nil, nil, err
	}
	return box, note, nil
}

// DeliveryNote bloquea el remito y recalcula cantidad de cajas, unidades y peso.
func DeliveryNote(ctx context.Context, r ports.Repositories, noteID string) (*entity.DeliveryNote, error) {
	note, err := r.DeliveryNotes.GetForUpdate(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.NotFound("remito", noteID)
	}
	boxes, err := r.Boxes.ListByDeliveryNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	inventory.ApplyDeliveryNoteTotals(note, inventory.RollupDeliveryNote(boxes))
	if err := r.DeliveryNotes.UpdateTotals(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}
