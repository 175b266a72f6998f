package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository   = itemRepo{}
	_ repository.StockRepository  = stockRepo{}
	_ repository.LedgerRepository = ledgerRepo{}
)

type itemRepo struct{ base }

func (r itemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	defer r.lock()()
	it, ok := r.st().items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

type stockRepo struct{ base }

func (r stockRepo) GetOrCreateItemStock(_ context.Context, itemID string) (*entity.ItemStock, error) {
	defer r.lock()()
	st := r.st()
	if _, ok := st.items[itemID]; !ok {
		return nil, domain.NotFound("ítem", itemID)
	}
	s, ok := st.stocks[itemID]
	if !ok {
		s = &entity.ItemStock{ID: uuid.New().String(), ItemID: itemID, UpdatedAt: time.Now()}
		st.stocks[itemID] = s
	}
	cp := *s
	return &cp, nil
}

func (r stockRepo) GetItemStock(_ context.Context, itemID string) (*entity.ItemStock, error) {
	defer r.lock()()
	s, ok := r.st().stocks[itemID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r stockRepo) findVariant(key entity.VariantKey) *entity.VariantStock {
	for _, v := range r.st().variants {
		if v.Key.SameVariant(key) {
			return v
		}
	}
	return nil
}

func (r stockRepo) GetVariantForUpdate(_ context.Context, key entity.VariantKey) (*entity.VariantStock, error) {
	defer r.lock()()
	v := r.findVariant(key)
	if v == nil {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r stockRepo) CreateVariant(_ context.Context, stockID string, key entity.VariantKey) (*entity.VariantStock, error) {
	defer r.lock()()
	if v := r.findVariant(key); v != nil {
		cp := *v
		return &cp, nil
	}
	v := &entity.VariantStock{ID: uuid.New().String(), StockID: stockID, Key: key, UpdatedAt: time.Now()}
	r.st().variants[v.ID] = v
	cp := *v
	return &cp, nil
}

func (r stockRepo) AddToVariant(_ context.Context, variantID string, delta int64) (int64, error) {
	defer r.lock()()
	v, ok := r.st().variants[variantID]
	if !ok {
		return 0, domain.NotFound("saldo de variante", variantID)
	}
	if v.Quantity+delta < 0 {
		// equivalente al CHECK (quantity >= 0) de la tabla
		return 0, fmt.Errorf("memory: saldo negativo en variante %s", variantID)
	}
	v.Quantity += delta
	v.UpdatedAt = time.Now()
	return v.Quantity, nil
}

func (r stockRepo) RecomputeItemStock(_ context.Context, stockID string) (int64, error) {
	defer r.lock()()
	st := r.st()
	var target *entity.ItemStock
	for _, s := range st.stocks {
		if s.ID == stockID {
			target = s
			break
		}
	}
	if target == nil {
		return 0, domain.NotFound("saldo de ítem", stockID)
	}
	var total int64
	for _, v := range st.variants {
		if v.StockID == stockID {
			total += v.Quantity
		}
	}
	target.Quantity = total
	target.UpdatedAt = time.Now()
	return total, nil
}

func (r stockRepo) ListVariants(_ context.Context, stockID string) ([]*entity.VariantStock, error) {
	defer r.lock()()
	out := []*entity.VariantStock{}
	for _, v := range r.st().variants {
		if v.StockID == stockID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.String() < out[j].Key.String() })
	return out, nil
}

func (r stockRepo) LinkFeature(_ context.Context, variantStockID string, pair entity.FeaturePair) error {
	defer r.lock()()
	st := r.st()
	for _, f := range st.features {
		if f.VariantStockID == variantStockID && f.Feature == pair {
			return nil
		}
	}
	f := &entity.StockFeature{ID: uuid.New().String(), VariantStockID: variantStockID, Feature: pair}
	st.features[f.ID] = f
	return nil
}

func (r stockRepo) ListFeatures(_ context.Context, variantStockID string) ([]*entity.StockFeature, error) {
	defer r.lock()()
	out := []*entity.StockFeature{}
	for _, f := range r.st().features {
		if f.VariantStockID == variantStockID {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type ledgerRepo struct{ base }

func (r ledgerRepo) CreateMovement(_ context.Context, m *entity.Movement) error {
	defer r.lock()()
	cp := *m
	r.st().movements[m.ID] = &cp
	return nil
}

func (r ledgerRepo) AppendEntry(_ context.Context, e *entity.LedgerEntry) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.movements[e.MovementID]; !ok {
		return domain.NotFound("movimiento", e.MovementID)
	}
	cp := *e
	cp.AdditionalFeatures = append([]entity.FeaturePair(nil), e.AdditionalFeatures...)
	st.entries = append(st.entries, &cp)
	return nil
}

func (r ledgerRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	defer r.lock()()
	entries := r.st().entries
	out := []*entity.LedgerEntry{}
	// más recientes primero
	skipped := 0
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		if entries[i].Key.ItemID != itemID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		cp := *entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r ledgerRepo) SumByVariant(_ context.Context, itemID string) (map[entity.VariantKey]int64, error) {
	defer r.lock()()
	out := map[entity.VariantKey]int64{}
	for _, e := range r.st().entries {
		if e.Key.ItemID == itemID {
			out[e.Key] += e.Quantity
		}
	}
	return out, nil
}
