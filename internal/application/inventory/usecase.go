package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// MovementUseCase registra movimientos del libro de forma transaccional, con bloqueo de fila
// (SELECT FOR UPDATE) sobre el saldo de la variante y Commit/Rollback vía TxRunner.
type MovementUseCase struct {
	txRunner ports.TxRunner
	cache    ports.StockCache
	now      func() time.Time
}

// NewMovementUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewMovementUseCase(txRunner ports.TxRunner, cache ports.StockCache) *MovementUseCase {
	if cache == nil {
		cache = ports.NoopStockCache{}
	}
	return &MovementUseCase{txRunner: txRunner, cache: cache, now: time.Now}
}

// MovementLine una línea del movimiento: delta firmado sobre una variante.
type MovementLine struct {
	Variant            entity.VariantKey    `json:"variant"`
	Quantity           int64                `json:"quantity" validate:"ne=0"`
	ProductionOrderID  string               `json:"production_order_id,omitempty" validate:"omitempty,uuid"`
	AdditionalFeatures []entity.FeaturePair `json:"additional_features,omitempty" validate:"omitempty,dive"`
}

// RecordInput entrada para registrar un movimiento (una o varias líneas, todo o nada).
type RecordInput struct {
	UserID string            `json:"user_id" validate:"required"`
	Source *entity.EntityRef `json:"source,omitempty"`
	Lines  []MovementLine    `json:"lines" validate:"required,min=1,dive"`
}

// EntryResult saldo resultante tras aplicar una línea.
type EntryResult struct {
	Entry             *entity.LedgerEntry
	VariantQuantity   int64
	ItemQuantity      int64
	DeliveredQuantity *int64
}

// MovementResult resultado de RecordMovement / RecordBatch.
type MovementResult struct {
	MovementID string
	Entries    []EntryResult
}

// RecordMovement registra un movimiento de una sola línea.
func (uc *MovementUseCase) RecordMovement(ctx context.Context, userID string, source *entity.EntityRef, line MovementLine) (*MovementResult, error) {
	return uc.RecordBatch(ctx, RecordInput{UserID: userID, Source: source, Lines: []MovementLine{line}})
}

// RecordBatch registra una cabecera con una entrada por línea. Si cualquier línea falla
// (stock insuficiente, ítem u orden inexistente), no se persiste ninguna.
func (uc *MovementUseCase) RecordBatch(ctx context.Context, in RecordInput) (*MovementResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	log := logger.Op(ctx, "inventory.record_movement")

	now := uc.now()
	movementID := uuid.New().String()
	source := entity.EntityRef{Kind: entity.EntityMovement, ID: movementID}
	if in.Source != nil {
		source = *in.Source
	}

	result := &MovementResult{MovementID: movementID}
	touched := make(map[string]struct{})

	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		result.Entries = result.Entries[:0]
		mov := &entity.Movement{ID: movementID, Source: source, UserID: in.UserID, CreatedAt: now}
		if err := r.Ledger.CreateMovement(ctx, mov); err != nil {
			return err
		}
		if err := lockProductionOrders(ctx, r, in.Lines); err != nil {
			return err
		}
		for _, line := range in.Lines {
			res, err := applyLine(ctx, r, movementID, line, now)
			if err != nil {
				return err
			}
			result.Entries = append(result.Entries, *res)
			touched[line.Variant.ItemID] = struct{}{}
		}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Int("lines", len(in.Lines)).Msg("movimiento rechazado")
		return nil, err
	}

	// El caché se invalida después del commit; nunca antes.
	items := make([]string, 0, len(touched))
	for id := range touched {
		items = append(items, id)
	}
	uc.cache.Invalidate(ctx, items...)

	log.Info().Str("movement_id", movementID).Str("source", source.String()).
		Int("lines", len(in.Lines)).Msg("movimiento registrado")
	return result, nil
}

// lockProductionOrders bloquea, ordenadas por id, las órdenes de producción referenciadas antes
// que cualquier saldo: el mismo orden que siguen las asignaciones (órdenes del proyecto, después
// variantes).
func lockProductionOrders(ctx context.Context, r ports.Repositories, lines []MovementLine) error {
	seen := map[string]struct{}{}
	ids := []string{}
	for _, l := range lines {
		if l.ProductionOrderID == "" {
			continue
		}
		if _, ok := seen[l.ProductionOrderID]; ok {
			continue
		}
		seen[l.ProductionOrderID] = struct{}{}
		ids = append(ids, l.ProductionOrderID)
	}
	sort.Strings(ids)
	for _, id := range ids {
		po, err := r.ProductionOrders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.NotFound("orden de producción", id)
		}
	}
	return nil
}

// applyLine bloquea la fila de la variante, valida el débito, agrega la entrada y recalcula el ítem.
func applyLine(ctx context.Context, r ports.Repositories, movementID string, line MovementLine, now time.Time) (*EntryResult, error) {
	key := line.Variant
	item, err := r.Items.GetByID(ctx, key.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("ítem", key.ItemID)
	}

	stock, err := r.Stock.GetOrCreateItemStock(ctx, key.ItemID)
	if err != nil {
		return nil, err
	}
	// Bloquea la fila de la variante para serializar débitos concurrentes
	variant, err := r.Stock.GetVariantForUpdate(ctx, key)
	if err != nil {
		return nil, err
	}
	var current int64
	if variant != nil {
		current = variant.Quantity
	}
	if !inventory.CanApply(variant != nil, current, line.Quantity) {
		return nil, domain.InsufficientStock(key.String(), current, -line.Quantity)
	}
	if variant == nil {
		if variant, err = r.Stock.CreateVariant(ctx, stock.ID, key); err != nil {
			return nil, err
		}
	}

	entry := &entity.LedgerEntry{
		ID:                 uuid.New().String(),
		MovementID:         movementID,
		Key:                key,
		Quantity:           line.Quantity,
		ProductionOrderID:  line.ProductionOrderID,
		AdditionalFeatures: line.AdditionalFeatures,
		CreatedAt:          now,
	}

	// la orden de producción ya está bloqueada por lockProductionOrders
	var delivered *int64

	if err := r.Ledger.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}
	newQty, err := r.Stock.AddToVariant(ctx, variant.ID, line.Quantity)
	if err != nil {
		return nil, err
	}
	for _, pair := range line.AdditionalFeatures {
		if err := r.Stock.LinkFeature(ctx, variant.ID, pair); err != nil {
			return nil, err
		}
	}
	itemQty, err := r.Stock.RecomputeItemStock(ctx, stock.ID)
	if err != nil {
		return nil, err
	}
	if line.ProductionOrderID != "" {
		d, err := r.ProductionOrders.AddDelivered(ctx, line.ProductionOrderID, line.Quantity)
		if err != nil {
			return nil, err
		}
		delivered = &d
	}

	return &EntryResult{Entry: entry, VariantQuantity: newQty, ItemQuantity: itemQty, DeliveredQuantity: delivered}, nil
}
