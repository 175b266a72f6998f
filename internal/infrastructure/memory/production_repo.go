package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = productionOrderRepo{}

type productionOrderRepo struct{ base }

func (r productionOrderRepo) Create(_ context.Context, po *entity.ProductionOrder) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.projects[po.ProjectID]; !ok {
		return domain.NotFound("proyecto", po.ProjectID)
	}
	cp := *po
	st.pos[po.ID] = &cp
	return nil
}

func (r productionOrderRepo) CreateItem(_ context.Context, item *entity.ProductionOrderItem) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.pos[item.ProductionOrderID]; !ok {
		return domain.NotFound("orden de producción", item.ProductionOrderID)
	}
	cp := *item
	st.poItems[item.ID] = &cp
	return nil
}

func (r productionOrderRepo) get(id string) (*entity.ProductionOrder, error) {
	defer r.lock()()
	po, ok := r.st().pos[id]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (r productionOrderRepo) GetByID(_ context.Context, id string) (*entity.ProductionOrder, error) {
	return r.get(id)
}

func (r productionOrderRepo) GetForUpdate(_ context.Context, id string) (*entity.ProductionOrder, error) {
	return r.get(id)
}

func (r productionOrderRepo) ListItems(_ context.Context, poID string) ([]*entity.ProductionOrderItem, error) {
	defer r.lock()()
	out := []*entity.ProductionOrderItem{}
	for _, it := range r.st().poItems {
		if it.ProductionOrderID == poID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r productionOrderRepo) AddDelivered(_ context.Context, id string, delta int64) (int64, error) {
	defer r.lock()()
	po, ok := r.st().pos[id]
	if !ok {
		return 0, domain.NotFound("orden de producción", id)
	}
	po.DeliveredQuantity += delta
	return po.DeliveredQuantity, nil
}

func (r productionOrderRepo) SetCloseDate(_ context.Context, id string, at time.Time) error {
	defer r.lock()()
	po, ok := r.st().pos[id]
	if !ok {
		return domain.NotFound("orden de producción", id)
	}
	t := at
	po.CloseDate = &t
	return nil
}

func (r productionOrderRepo) CreateStatus(_ context.Context, status *entity.ProductionOrderStatus) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.pos[status.ProductionOrderID]; !ok {
		return domain.NotFound("orden de producción", status.ProductionOrderID)
	}
	cp := *status
	st.poStatuses = append(st.poStatuses, &cp)
	return nil
}

func (r productionOrderRepo) statusesOf(poID string) []*entity.ProductionOrderStatus {
	out := []*entity.ProductionOrderStatus{}
	for _, s := range r.st().poStatuses {
		if s.ProductionOrderID == poID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out
}

func (r productionOrderRepo) ListStatuses(_ context.Context, poID string) ([]*entity.ProductionOrderStatus, error) {
	defer r.lock()()
	out := r.statusesOf(poID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// LockByProject no hace nada: Run ya serializa las transacciones.
func (r productionOrderRepo) LockByProject(_ context.Context, _ string) error { return nil }

func (r productionOrderRepo) LatestStatusesByProject(_ context.Context, projectID string) ([]*entity.ProductionOrderStatus, error) {
	defer r.lock()()
	out := []*entity.ProductionOrderStatus{}
	for _, po := range r.st().pos {
		if po.ProjectID != projectID {
			continue
		}
		if latest := inventory.LatestStatus(r.statusesOf(po.ID)); latest != nil {
			out = append(out, latest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductionOrderID < out[j].ProductionOrderID })
	return out, nil
}
