package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/rollup"
	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// UseCase administra la demanda (ítems de pedido) y su asignación a cajas (ítems de caja).
// Cada operación corre en una transacción; las filas de demanda, saldo y asignación se bloquean
// en el orden órdenes de producción del proyecto (compartido) -> ítem de caja -> ítem de pedido ->
// saldo de variante -> caja -> remito.
type UseCase struct {
	txRunner ports.TxRunner
	cache    ports.StockCache
	now      func() time.Time
}

// NewUseCase construye el caso de uso. cache puede ser nil.
func NewUseCase(txRunner ports.TxRunner, cache ports.StockCache) *UseCase {
	if cache == nil {
		cache = ports.NoopStockCache{}
	}
	return &UseCase{txRunner: txRunner, cache: cache, now: time.Now}
}

// DemandInput entrada para AddDemand.
type DemandInput struct {
	OrderID  string            `json:"order_id" validate:"required,uuid"`
	Variant  entity.VariantKey `json:"variant"`
	Quantity int64             `json:"quantity" validate:"gt=0"`
}

// DemandView demanda con lo asignado y lo pendiente, calculados en vivo.
type DemandView struct {
	Item      *entity.OrderItem
	Allocated int64
	Remaining int64
}

// AllocateInput entrada para Allocate.
type AllocateInput struct {
	OrderID  string            `json:"order_id" validate:"required,uuid"`
	Variant  entity.VariantKey `json:"variant"`
	BoxID    string            `json:"box_id" validate:"required,uuid"`
	Quantity int64             `json:"quantity" validate:"gt=0"`
	UserID   string            `json:"user_id" validate:"required"`
}

// AllocationResult asignación con los derivados recalculados.
type AllocationResult struct {
	Item              *entity.BoxItem
	RemainingQuantity int64
	Box               *entity.Box
	DeliveryNote      *entity.DeliveryNote
	VariantQuantity   int64
	ItemQuantity      int64
}

// ensureMutable recorre pedido -> proyecto -> órdenes de producción; si alguna está Finalizada,
// la demanda y sus asignaciones quedan congeladas. Las órdenes quedan bloqueadas en modo
// compartido hasta el commit, así un paso a Finalizada no se cuela entre la lectura y la escritura.
func ensureMutable(ctx context.Context, r ports.Repositories, orderID string) (*entity.Order, error) {
	order, err := r.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("pedido", orderID)
	}
	if err := r.ProductionOrders.LockByProject(ctx, order.ProjectID); err != nil {
		return nil, err
	}
	statuses, err := r.ProductionOrders.LatestStatusesByProject(ctx, order.ProjectID)
	if err != nil {
		return nil, err
	}
	for _, s := range statuses {
		if s.Status == entity.ProductionStatusFinished {
			return nil, domain.Conflict("el proyecto tiene una orden de producción Finalizada")
		}
	}
	return order, nil
}

// AddDemand crea la demanda de (pedido, variante) o incrementa la existente.
func (uc *UseCase) AddDemand(ctx context.Context, in DemandInput) (*DemandView, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var view *DemandView
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		if _, err := ensureMutable(ctx, r, in.OrderID); err != nil {
			return err
		}
		item, err := r.Items.GetByID(ctx, in.Variant.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound("ítem", in.Variant.ItemID)
		}
		demand, err := r.OrderItems.Upsert(ctx, &entity.OrderItem{
			ID: uuid.New().String(), OrderID: in.OrderID, Key: in.Variant, Quantity: in.Quantity,
		})
		if err != nil {
			return err
		}
		allocated, err := r.BoxItems.SumAllocated(ctx, demand.ID, demand.Key.FeatureOptionID)
		if err != nil {
			return err
		}
		view = &DemandView{Item: demand, Allocated: allocated, Remaining: demand.Quantity - allocated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateDemand fija la cantidad pedida; no puede quedar por debajo de lo ya asignado.
func (uc *UseCase) UpdateDemand(ctx context.Context, id string, quantity int64) (*DemandView, error) {
	if err := validation.ID("order_item_id", id); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity: debe ser > 0")
	}
	var view *DemandView
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		demand, err := r.OrderItems.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if demand == nil {
			return domain.NotFound("ítem de pedido", id)
		}
		if _, err := ensureMutable(ctx, r, demand.OrderID); err != nil {
			return err
		}
		allocated, err := r.BoxItems.SumAllocated(ctx, demand.ID, demand.Key.FeatureOptionID)
		if err != nil {
			return err
		}
		if quantity < allocated {
			return domain.OverAllocation(demand.ID, quantity, allocated, 0)
		}
		if err := r.OrderItems.UpdateQuantity(ctx, demand.ID, quantity); err != nil {
			return err
		}
		demand.Quantity = quantity
		view = &DemandView{Item: demand, Allocated: allocated, Remaining: quantity - allocated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteDemand elimina la demanda si ninguna asignación la referencia.
func (uc *UseCase) DeleteDemand(ctx context.Context, id string) error {
	if err := validation.ID("order_item_id", id); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		demand, err := r.OrderItems.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if demand == nil {
			return domain.NotFound("ítem de pedido", id)
		}
		if _, err := ensureMutable(ctx, r, demand.OrderID); err != nil {
			return err
		}
		allocs, err := r.BoxItems.ListByOrderItem(ctx, demand.ID)
		if err != nil {
			return err
		}
		if len(allocs) > 0 {
			return domain.Conflict("el ítem de pedido tiene asignaciones")
		}
		return r.OrderItems.Delete(ctx, demand.ID)
	})
}

// ListDemand lista la demanda del pedido con lo pendiente calculado desde las asignaciones actuales.
func (uc *UseCase) ListDemand(ctx context.Context, orderID string) ([]DemandView, error) {
	if err := validation.ID("order_id", orderID); err != nil {
		return nil, err
	}
	r := uc.txRunner.Repos()
	order, err := r.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("pedido", orderID)
	}
	demands, err := r.OrderItems.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]DemandView, 0, len(demands))
	for _, d := range demands {
		allocs, err := r.BoxItems.ListByOrderItem(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		allocated := inventory.AllocatedFor(d, allocs)
		out = append(out, DemandView{Item: d, Allocated: allocated, Remaining: d.Quantity - allocated})
	}
	return out, nil
}

// Allocate empaca qty unidades de la variante en la caja contra la demanda del pedido.
// Si no hay demanda para (pedido, variante) se crea con qty; la existente no se incrementa.
func (uc *UseCase) Allocate(ctx context.Context, in AllocateInput) (*AllocationResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	log := logger.Op(ctx, "allocation.allocate")
	var res *AllocationResult

	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		if _, err := ensureMutable(ctx, r, in.OrderID); err != nil {
			return err
		}
		box, err := r.Boxes.GetByID(ctx, in.BoxID)
		if err != nil {
			return err
		}
		if box == nil {
			return domain.NotFound("caja", in.BoxID)
		}
		if box.OrderID != "" && box.OrderID != in.OrderID {
			return domain.Invalid("box_id: la caja pertenece a otro pedido")
		}
		item, err := r.Items.GetByID(ctx, in.Variant.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound("ítem", in.Variant.ItemID)
		}

		demand, err := r.OrderItems.FindForUpdate(ctx, in.OrderID, in.Variant)
		if err != nil {
			return err
		}
		if demand == nil {
			// sin demanda previa: se crea con la cantidad asignada. Si otra transacción la creó
			// entre la búsqueda y el insert, se usa la suya tal cual.
			if err := r.OrderItems.CreateIfAbsent(ctx, &entity.OrderItem{
				ID: uuid.New().String(), OrderID: in.OrderID, Key: in.Variant, Quantity: in.Quantity,
			}); err != nil {
				return err
			}
			if demand, err = r.OrderItems.FindForUpdate(ctx, in.OrderID, in.Variant); err != nil {
				return err
			}
			if demand == nil {
				return domain.NotFound("ítem de pedido", in.OrderID)
			}
		}
		allocated, err := r.BoxItems.SumAllocated(ctx, demand.ID, demand.Key.FeatureOptionID)
		if err != nil {
			return err
		}
		if allocated+in.Quantity > demand.Quantity {
			return domain.OverAllocation(demand.ID, demand.Quantity, allocated, in.Quantity)
		}

		variant, err := r.Stock.GetVariantForUpdate(ctx, in.Variant)
		if err != nil {
			return err
		}
		var current int64
		if variant != nil {
			current = variant.Quantity
		}
		if !inventory.CanApply(variant != nil, current, -in.Quantity) {
			return domain.InsufficientStock(in.Variant.String(), current, in.Quantity)
		}

		now := uc.now()
		bi := &entity.BoxItem{
			ID:          uuid.New().String(),
			BoxID:       box.ID,
			OrderItemID: demand.ID,
			Key:         in.Variant,
			Quantity:    in.Quantity,
			UserID:      in.UserID,
			UnitWeight:  item.UnitWeight,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.BoxItems.Create(ctx, bi); err != nil {
			return err
		}
		variantQty, err := r.Stock.AddToVariant(ctx, variant.ID, -in.Quantity)
		if err != nil {
			return err
		}
		itemQty, err := r.Stock.RecomputeItemStock(ctx, variant.StockID)
		if err != nil {
			return err
		}
		updatedBox, note, err := rollup.Box(ctx, r, box.ID)
		if err != nil {
			return err
		}
		res = &AllocationResult{
			Item:              bi,
			RemainingQuantity: demand.Quantity - allocated - in.Quantity,
			Box:               updatedBox,
			DeliveryNote:      note,
			VariantQuantity:   variantQty,
			ItemQuantity:      itemQty,
		}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("order_id", in.OrderID).Str("box_id", in.BoxID).Msg("asignación rechazada")
		return nil, err
	}
	uc.cache.Invalidate(ctx, in.Variant.ItemID)
	log.Info().Str("box_item_id", res.Item.ID).Str("box_id", in.BoxID).Int64("quantity", in.Quantity).
		Int64("remaining", res.RemainingQuantity).Msg("asignación registrada")
	return res, nil
}

// UpdateAllocation cambia la cantidad asignada aplicando solo la diferencia al saldo.
func (uc *UseCase) UpdateAllocation(ctx context.Context, id string, quantity int64) (*AllocationResult, error) {
	if err := validation.ID("box_item_id", id); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity: debe ser > 0")
	}
	var res *AllocationResult
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		bi, err := r.BoxItems.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if bi == nil {
			return domain.NotFound("asignación", id)
		}
		demand, err := r.OrderItems.GetForUpdate(ctx, bi.OrderItemID)
		if err != nil {
			return err
		}
		if demand == nil {
			return domain.NotFound("ítem de pedido", bi.OrderItemID)
		}
		if _, err := ensureMutable(ctx, r, demand.OrderID); err != nil {
			return err
		}
		allocated, err := r.BoxItems.SumAllocated(ctx, demand.ID, demand.Key.FeatureOptionID)
		if err != nil {
			return err
		}
		delta := quantity - bi.Quantity
		if delta > 0 && allocated+delta > demand.Quantity {
			return domain.OverAllocation(demand.ID, demand.Quantity, allocated, delta)
		}

		variant, err := lockVariant(ctx, r, bi.Key, delta <= 0)
		if err != nil {
			return err
		}
		if delta > 0 && !inventory.CanApply(variant != nil, quantityOf(variant), -delta) {
			return domain.InsufficientStock(bi.Key.String(), quantityOf(variant), delta)
		}

		variantQty, itemQty := variant.Quantity, int64(0)
		if delta != 0 {
			if err := r.BoxItems.UpdateQuantity(ctx, bi.ID, quantity); err != nil {
				return err
			}
			if variantQty, err = r.Stock.AddToVariant(ctx, variant.ID, -delta); err != nil {
				return err
			}
		}
		if itemQty, err = r.Stock.RecomputeItemStock(ctx, variant.StockID); err != nil {
			return err
		}
		box, note, err := rollup.Box(ctx, r, bi.BoxID)
		if err != nil {
			return err
		}
		bi.Quantity = quantity
		res = &AllocationResult{
			Item:              bi,
			RemainingQuantity: demand.Quantity - allocated - delta,
			Box:               box,
			DeliveryNote:      note,
			VariantQuantity:   variantQty,
			ItemQuantity:      itemQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, res.Item.Key.ItemID)
	return res, nil
}

// DeallocateResult saldos tras devolver la asignación.
type DeallocateResult struct {
	Box               *entity.Box
	DeliveryNote      *entity.DeliveryNote
	RemainingQuantity int64
	VariantQuantity   int64
}

// Deallocate devuelve la cantidad asignada al stock, borra la asignación y recalcula la caja.
func (uc *UseCase) Deallocate(ctx context.Context, id string) (*DeallocateResult, error) {
	if err := validation.ID("box_item_id", id); err != nil {
		return nil, err
	}
	var (
		res    *DeallocateResult
		itemID string
	)
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		bi, err := r.BoxItems.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if bi == nil {
			return domain.NotFound("asignación", id)
		}
		itemID = bi.Key.ItemID
		released, err := uc.ReleaseInTx(ctx, r, bi)
		if err != nil {
			return err
		}
		box, note, err := rollup.Box(ctx, r, bi.BoxID)
		if err != nil {
			return err
		}
		res = &DeallocateResult{Box: box, DeliveryNote: note, RemainingQuantity: released.Remaining, VariantQuantity: released.VariantQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, itemID)
	logger.FromContext(ctx).Info().Str("box_item_id", id).Msg("asignación devuelta al stock")
	return res, nil
}

// Released resultado de ReleaseInTx.
type Released struct {
	VariantQuantity int64
	Remaining       int64
}

// ReleaseInTx devuelve una asignación al stock y la borra usando los repositorios de la
// transacción del llamador (DeleteBox). No recalcula la caja; eso queda a cargo del llamador.
func (uc *UseCase) ReleaseInTx(ctx context.Context, r ports.Repositories, bi *entity.BoxItem) (*Released, error) {
	demand, err := r.OrderItems.GetForUpdate(ctx, bi.OrderItemID)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, domain.NotFound("ítem de pedido", bi.OrderItemID)
	}
	if _, err := ensureMutable(ctx, r, demand.OrderID); err != nil {
		return nil, err
	}
	variant, err := lockVariant(ctx, r, bi.Key, true)
	if err != nil {
		return nil, err
	}
	if err := r.BoxItems.Delete(ctx, bi.ID); err != nil {
		return nil, err
	}
	qty, err := r.Stock.AddToVariant(ctx, variant.ID, bi.Quantity)
	if err != nil {
		return nil, err
	}
	if _, err := r.Stock.RecomputeItemStock(ctx, variant.StockID); err != nil {
		return nil, err
	}
	allocated, err := r.BoxItems.SumAllocated(ctx, demand.ID, demand.Key.FeatureOptionID)
	if err != nil {
		return nil, err
	}
	return &Released{VariantQuantity: qty, Remaining: demand.Quantity - allocated}, nil
}

// lockVariant bloquea el saldo de la variante. Con create, una fila inexistente se crea en 0
// (devolver stock siempre es posible).
func lockVariant(ctx context.Context, r ports.Repositories, key entity.VariantKey, create bool) (*entity.VariantStock, error) {
	variant, err := r.Stock.GetVariantForUpdate(ctx, key)
	if err != nil || variant != nil || !create {
		return variant, err
	}
	stock, err := r.Stock.GetOrCreateItemStock(ctx, key.ItemID)
	if err != nil {
		return nil, err
	}
	return r.Stock.CreateVariant(ctx, stock.ID, key)
}

func quantityOf(v *entity.VariantStock) int64 {
	if v == nil {
		return 0
	}
	return v.Quantity
}
