package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

const (
	defaultEntriesLimit = 50
	maxEntriesLimit     = 500
)

// GetStock devuelve el saldo del ítem y de sus variantes. Lee primero del caché.
func (uc *MovementUseCase) GetStock(ctx context.Context, itemID string) (*ports.StockSnapshot, error) {
	if err := validation.ID("item_id", itemID); err != nil {
		return nil, err
	}
	if snap, ok := uc.cache.Get(ctx, itemID); ok {
		return snap, nil
	}
	r := uc.txRunner.Repos()
	item, err := r.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("ítem", itemID)
	}
	snap := &ports.StockSnapshot{ItemID: itemID, Variants: []ports.VariantSnapshot{}}
	stock, err := r.Stock.GetItemStock(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if stock != nil {
		variants, err := r.Stock.ListVariants(ctx, stock.ID)
		if err != nil {
			return nil, err
		}
		snap.Quantity = stock.Quantity
		for _, v := range variants {
			snap.Variants = append(snap.Variants, ports.VariantSnapshot{
				ItemFeatureID:   v.Key.ItemFeatureID,
				FeatureOptionID: v.Key.FeatureOptionID,
				Quantity:        v.Quantity,
			})
		}
	}
	uc.cache.Set(ctx, snap)
	return snap, nil
}

// ListEntries lista las entradas del libro para un ítem, más recientes primero.
func (uc *MovementUseCase) ListEntries(ctx context.Context, itemID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	if err := validation.ID("item_id", itemID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultEntriesLimit
	}
	if limit > maxEntriesLimit {
		limit = maxEntriesLimit
	}
	if offset < 0 {
		offset = 0
	}
	r := uc.txRunner.Repos()
	item, err := r.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("ítem", itemID)
	}
	return r.Ledger.ListByItem(ctx, itemID, limit, offset)
}

// VariantDrift comparación entre el saldo almacenado y el derivado del libro.
type VariantDrift struct {
	Key      entity.VariantKey
	Stored   int64
	Expected int64
	Drift    int64
}

// ReconcileReport resultado de ReconcileItem.
type ReconcileReport struct {
	ItemID       string
	ItemStored   int64
	ItemExpected int64
	ItemDrift    int64
	Variants     []VariantDrift
}

// Consistent indica que ningún saldo se desvía de lo derivado.
func (r ReconcileReport) Consistent() bool {
	if r.ItemDrift != 0 {
		return false
	}
	for _, v := range r.Variants {
		if v.Drift != 0 {
			return false
		}
	}
	return true
}

// ReconcileItem recalcula Σ libro − Σ asignaciones por variante y lo compara con los saldos
// almacenados. Solo lectura: no corrige nada.
func (uc *MovementUseCase) ReconcileItem(ctx context.Context, itemID string) (*ReconcileReport, error) {
	if err := validation.ID("item_id", itemID); err != nil {
		return nil, err
	}
	report := &ReconcileReport{ItemID: itemID}
	err := uc.txRunner.Run(ctx, func(r ports.Repositories) error {
		item, err := r.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound("ítem", itemID)
		}
		ledger, err := r.Ledger.SumByVariant(ctx, itemID)
		if err != nil {
			return err
		}
		allocated, err := r.BoxItems.SumByVariant(ctx, itemID)
		if err != nil {
			return err
		}
		stored := map[entity.VariantKey]int64{}
		stock, err := r.Stock.GetItemStock(ctx, itemID)
		if err != nil {
			return err
		}
		if stock != nil {
			variants, err := r.Stock.ListVariants(ctx, stock.ID)
			if err != nil {
				return err
			}
			for _, v := range variants {
				stored[v.Key] = v.Quantity
			}
			report.ItemStored = stock.Quantity
			report.ItemExpected = inventory.SumVariants(variants)
		}
		report.ItemDrift = report.ItemStored - report.ItemExpected

		keys := map[entity.VariantKey]struct{}{}
		for k := range ledger {
			keys[k] = struct{}{}
		}
		for k := range allocated {
			keys[k] = struct{}{}
		}
		for k := range stored {
			keys[k] = struct{}{}
		}
		for k := range keys {
			expected := ledger[k] - allocated[k]
			report.Variants = append(report.Variants, VariantDrift{
				Key: k, Stored: stored[k], Expected: expected, Drift: stored[k] - expected,
			})
		}
		sort.Slice(report.Variants, func(i, j int) bool {
			return report.Variants[i].Key.String() < report.Variants[j].Key.String()
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !report.Consistent() {
		logger.FromContext(ctx).Warn().Str("item_id", itemID).Int64("item_drift", report.ItemDrift).
			Msg("saldo desviado del libro")
	}
	return report, nil
}
