package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/rollup"
	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// Releaser devuelve una asignación al stock dentro de la transacción del llamador.
// Lo implementa allocation.UseCase.
type Releaser interface {
	ReleaseInTx(ctx context.Context, r ports.Repositories, bi *entity.BoxItem) (*allocation.Released, error)
}

// UseCase cajas y remitos: membresía y totales recalculados desde los hijos.
type UseCase struct {
	txRunner ports.TxRunner
	releaser Releaser
	cache    ports.StockCache
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ports.TxRunner, releaser Releaser, cache ports.StockCache) *UseCase {
	if cache == nil {
		cache = ports.NoopStockCache{}
	}
	return &UseCase{txRunner: txRunner, releaser: releaser, cache: cache, now: time.Now}
}

// BoxInput entrada para CreateBox.
type BoxInput struct {
	ProjectID  string `json:"project_id" validate:"required,uuid"`
	CustomerID string `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	OrderID    string `json:"order_id,omitempty" validate:"omitempty,uuid"`
	PackageID  string `json:"package_id,omitempty" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" validate:"required"`
}

// BoxView caja con sus asignaciones.
type BoxView struct {
	Box   *entity.Box
	Items []*entity.BoxItem
}

// CreateBox crea una caja vacía. Con OrderID la caja solo aceptará asignaciones de ese pedido.
func (uc *UseCase) CreateBox(ctx context.Context, in BoxInput) (*entity.Box, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	box := &entity.Box{
		ID:          uuid.New().String(),
		ProjectID:   in.ProjectID,
		CustomerID:  in.CustomerID,
		OrderID:     in.OrderID,
		PackageID:   in.PackageID,
		UserID:      in.UserID,
		TotalWeight: decimal.Zero,
		CreatedAt:   uc.now(),
	}
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		if in.OrderID != "" {
			order, err := r.Orders.GetByID(ctx, in.OrderID)
			if err != nil {
				return err
			}
			if order == nil {
				return domain.NotFound("pedido", in.OrderID)
			}
		}
		return r.Boxes.Create(ctx, box)
	})
	if err != nil {
		return nil, err
	}
	return box, nil
}

// GetBox devuelve la caja y sus asignaciones.
func (uc *UseCase) GetBox(ctx context.Context, id string) (*BoxView, error) {
	if err := validation.ID("box_id", id); err != nil {
		return nil, err
	}
	r := uc.txRunner.Repos()
	box, err := r.Boxes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.NotFound("caja", id)
	}
	items, err := r.BoxItems.ListByBox(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BoxView{Box: box, Items: items}, nil
}

// DeleteBoxResult resultado de DeleteBox.
type DeleteBoxResult struct {
	Released     int
	DeliveryNote *entity.DeliveryNote
}

// DeleteBox devuelve al stock cada asignación de la caja, la desvincula de su remito
// (recalculándolo) y la elimina. Todo o nada.
func (uc *UseCase) DeleteBox(ctx context.Context, id string) (*DeleteBoxResult, error) {
	if err := validation.ID("box_id", id); err != nil {
		return nil, err
	}
	res := &DeleteBoxResult{}
	touched := map[string]struct{}{}
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		exists, err := r.Boxes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if exists == nil {
			return domain.NotFound("caja", id)
		}
		items, err := r.BoxItems.ListByBox(ctx, id)
		if err != nil {
			return err
		}
		for _, it := range items {
			bi, err := r.BoxItems.GetForUpdate(ctx, it.ID)
			if err != nil {
				return err
			}
			if bi == nil {
				continue
			}
			if _, err := uc.releaser.ReleaseInTx(ctx, r, bi); err != nil {
				return err
			}
			touched[bi.Key.ItemID] = struct{}{}
			res.Released++
		}

		box, err := r.Boxes.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		noteID := box.DeliveryNoteID
		if noteID != "" {
			if err := r.DeliveryNotes.UnlinkBox(ctx, noteID, id); err != nil {
				return err
			}
			if err := r.Boxes.SetDeliveryNote(ctx, id, ""); err != nil {
				return err
			}
		}
		if err := r.Boxes.Delete(ctx, id); err != nil {
			return err
		}
		if noteID != "" {
			if res.DeliveryNote, err = rollup.DeliveryNote(ctx, r, noteID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for itemID := range touched {
		uc.cache.Invalidate(ctx, itemID)
	}
	logger.FromContext(ctx).Info().Str("box_id", id).Int("released", res.Released).Msg("caja eliminada")
	return res, nil
}

// DeliveryNoteInput entrada para CreateDeliveryNote.
type DeliveryNoteInput struct {
	ProjectID    string   `json:"project_id" validate:"required,uuid"`
	CustomerID   string   `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	OrderID      string   `json:"order_id,omitempty" validate:"omitempty,uuid"`
	InvoiceID    string   `json:"invoice_id,omitempty" validate:"omitempty,uuid"`
	ExpeditionID string   `json:"expedition_id,omitempty" validate:"omitempty,uuid"`
	BoxIDs       []string `json:"box_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// DeliveryNoteView remito con sus cajas.
type DeliveryNoteView struct {
	Note  *entity.DeliveryNote
	Boxes []*entity.Box
}

// CreateDeliveryNote crea el remito y vincula las cajas iniciales, si las hay.
func (uc *UseCase) CreateDeliveryNote(ctx context.Context, in DeliveryNoteInput) (*DeliveryNoteView, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	note := &entity.DeliveryNote{
		ID:           uuid.New().String(),
		InvoiceID:    in.InvoiceID,
		ProjectID:    in.ProjectID,
		CustomerID:   in.CustomerID,
		OrderID:      in.OrderID,
		ExpeditionID: in.ExpeditionID,
		TotalWeight:  decimal.Zero,
		CreatedAt:    uc.now(),
	}
	var view *DeliveryNoteView
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		if err := r.DeliveryNotes.Create(ctx, note); err != nil {
			return err
		}
		for _, boxID := range in.BoxIDs {
			if err := linkBox(ctx, r, note.ID, boxID); err != nil {
				return err
			}
		}
		updated, err := rollup.DeliveryNote(ctx, r, note.ID)
		if err != nil {
			return err
		}
		boxes, err := r.Boxes.ListByDeliveryNote(ctx, note.ID)
		if err != nil {
			return err
		}
		view = &DeliveryNoteView{Note: updated, Boxes: boxes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetDeliveryNote devuelve el remito y sus cajas.
func (uc *UseCase) GetDeliveryNote(ctx context.Context, id string) (*DeliveryNoteView, error) {
	if err := validation.ID("delivery_note_id", id); err != nil {
		return nil, err
	}
	r := uc.txRunner.Repos()
	note, err := r.DeliveryNotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.NotFound("remito", id)
	}
	boxes, err := r.Boxes.ListByDeliveryNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeliveryNoteView{Note: note, Boxes: boxes}, nil
}

// AddBox vincula una caja al remito y recalcula sus totales. Volver a vincular la misma caja no cambia nada.
func (uc *UseCase) AddBox(ctx context.Context, noteID, boxID string) (*entity.DeliveryNote, error) {
	if err := validation.ID("delivery_note_id", noteID); err != nil {
		return nil, err
	}
	if err := validation.ID("box_id", boxID); err != nil {
		return nil, err
	}
	var note *entity.DeliveryNote
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		exists, err := r.DeliveryNotes.GetByID(ctx, noteID)
		if err != nil {
			return err
		}
		if exists == nil {
			return domain.NotFound("remito", noteID)
		}
		if err := linkBox(ctx, r, noteID, boxID); err != nil {
			return err
		}
		note, err = rollup.DeliveryNote(ctx, r, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func linkBox(ctx context.Context, r ports.Repositories, noteID, boxID string) error {
	box, err := r.Boxes.GetForUpdate(ctx, boxID)
	if err != nil {
		return err
	}
	if box == nil {
		return domain.NotFound("caja", boxID)
	}
	switch box.DeliveryNoteID {
	case noteID:
		return nil
	case "":
	default:
		return domain.Conflict("la caja " + boxID + " ya pertenece a otro remito")
	}
	if err := r.DeliveryNotes.LinkBox(ctx, noteID, boxID); err != nil {
		return err
	}
	return r.Boxes.SetDeliveryNote(ctx, boxID, noteID)
}

// RemoveBox desvincula la caja del remito y recalcula sus totales. No toca el stock.
func (uc *UseCase) RemoveBox(ctx context.Context, noteID, boxID string) (*entity.DeliveryNote, error) {
	if err := validation.ID("delivery_note_id", noteID); err != nil {
		return nil, err
	}
	if err := validation.ID("box_id", boxID); err != nil {
		return nil, err
	}
	var note *entity.DeliveryNote
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		box, err := r.Boxes.GetForUpdate(ctx, boxID)
		if err != nil {
			return err
		}
		if box == nil || box.DeliveryNoteID != noteID {
			return domain.NotFound("caja en remito", boxID)
		}
		if err := r.DeliveryNotes.UnlinkBox(ctx, noteID, boxID); err != nil {
			return err
		}
		if err := r.Boxes.SetDeliveryNote(ctx, boxID, ""); err != nil {
			return err
		}
		note, err = rollup.DeliveryNote(ctx, r, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteDeliveryNote desvincula sus cajas y elimina el remito. Las cajas y el stock quedan intactos.
func (uc *UseCase) DeleteDeliveryNote(ctx context.Context, id string) error {
	if err := validation.ID("delivery_note_id", id); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		note, err := r.DeliveryNotes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if note == nil {
			return domain.NotFound("remito", id)
		}
		boxes, err := r.Boxes.ListByDeliveryNote(ctx, id)
		if err != nil {
			return err
		}
		// cajas primero, remito al final
		for _, b := range boxes {
			if _, err := r.Boxes.GetForUpdate(ctx, b.ID); err != nil {
				return err
			}
			if err := r.DeliveryNotes.UnlinkBox(ctx, id, b.ID); err != nil {
				return err
			}
			if err := r.Boxes.SetDeliveryNote(ctx, b.ID, ""); err != nil {
				return err
			}
		}
		if _, err := r.DeliveryNotes.GetForUpdate(ctx, id); err != nil {
			return err
		}
		return r.DeliveryNotes.Delete(ctx, id)
	})
}
