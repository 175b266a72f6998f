package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// UseCase órdenes de producción: alta, transiciones de estado y consulta.
// Las entregas (delivered_quantity) las acumula el libro de movimientos.
type UseCase struct {
	txRunner ports.TxRunner
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ports.TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner, now: time.Now}
}

// ItemInput línea planificada.
type ItemInput struct {
	Variant  entity.VariantKey `json:"variant"`
	Quantity int64             `json:"quantity" validate:"gt=0"`
}

// CreateInput entrada para Create.
type CreateInput struct {
	ProjectID string      `json:"project_id" validate:"required,uuid"`
	UserID    string      `json:"user_id" validate:"required"`
	Items     []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// View orden con sus líneas, el estado vigente y lo pendiente de entregar.
type View struct {
	Order     *entity.ProductionOrder
	Items     []*entity.ProductionOrderItem
	Status    *entity.ProductionOrderStatus
	Remaining int64
}

// Create registra la orden: planificado = Σ líneas (inmutable), entregado = 0, estado Aberto.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*View, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	po := &entity.ProductionOrder{ID: uuid.New().String(), ProjectID: in.ProjectID, CreatedAt: now}
	for _, it := range in.Items {
		po.PlannedQuantity += it.Quantity
	}
	view := &View{Order: po, Remaining: po.PlannedQuantity}

	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		if err := r.ProductionOrders.Create(ctx, po); err != nil {
			return err
		}
		view.Items = view.Items[:0]
		for _, it := range in.Items {
			item, err := r.Items.GetByID(ctx, it.Variant.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.NotFound("ítem", it.Variant.ItemID)
			}
			line := &entity.ProductionOrderItem{
				ID: uuid.New().String(), ProductionOrderID: po.ID, Key: it.Variant, Quantity: it.Quantity,
			}
			if err := r.ProductionOrders.CreateItem(ctx, line); err != nil {
				return err
			}
			view.Items = append(view.Items, line)
		}
		status := &entity.ProductionOrderStatus{
			ID: uuid.New().String(), ProductionOrderID: po.ID, Status: entity.ProductionStatusOpen,
			UserID: in.UserID, CreatedAt: now,
		}
		view.Status = status
		return r.ProductionOrders.CreateStatus(ctx, status)
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info().Str("production_order_id", po.ID).Int64("planned", po.PlannedQuantity).
		Msg("orden de producción creada")
	return view, nil
}

// ChangeStatus agrega un evento de estado. Desde Finalizada no se acepta ninguno;
// llegar a Finalizada fija close_date.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, status, userID string) (*View, error) {
	if err := validation.ID("production_order_id", id); err != nil {
		return nil, err
	}
	if !entity.IsValidProductionStatus(status) {
		return nil, domain.Invalid("status: debe ser uno de: Aberto Parcial Finalizada")
	}
	if userID == "" {
		return nil, domain.Invalid("user_id: es obligatorio")
	}
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		po, err := r.ProductionOrders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.NotFound("orden de producción", id)
		}
		statuses, err := r.ProductionOrders.ListStatuses(ctx, id)
		if err != nil {
			return err
		}
		current := ""
		now := uc.now()
		if latest := inventory.LatestStatus(statuses); latest != nil {
			current = latest.Status
			// el vigente se elige por created_at: el nuevo debe quedar estrictamente después
			if !now.After(latest.CreatedAt) {
				now = latest.CreatedAt.Add(time.Microsecond)
			}
		}
		if !inventory.CanTransition(current, status) {
			return domain.Conflict("la orden de producción está Finalizada")
		}
		if err := r.ProductionOrders.CreateStatus(ctx, &entity.ProductionOrderStatus{
			ID: uuid.New().String(), ProductionOrderID: id, Status: status, UserID: userID, CreatedAt: now,
		}); err != nil {
			return err
		}
		if status == entity.ProductionStatusFinished {
			return r.ProductionOrders.SetCloseDate(ctx, id, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info().Str("production_order_id", id).Str("status", status).Msg("estado de orden de producción")
	return uc.Get(ctx, id)
}

// Get devuelve la orden, sus líneas, el estado vigente y remaining = planificado − entregado.
func (uc *UseCase) Get(ctx context.Context, id string) (*View, error) {
	if err := validation.ID("production_order_id", id); err != nil {
		return nil, err
	}
	r := uc.txRunner.Repos()
	po, err := r.ProductionOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.NotFound("orden de producción", id)
	}
	items, err := r.ProductionOrders.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	statuses, err := r.ProductionOrders.ListStatuses(ctx, id)
	if err != nil {
		return nil, err
	}
	return &View{Order: po, Items: items, Status: inventory.LatestStatus(statuses), Remaining: po.RemainingQuantity()}, nil
}
