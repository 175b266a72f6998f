package allocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
)

type fixture struct {
	ctx       context.Context
	store     *memory.Store
	uc        *allocation.UseCase
	movements *appinv.MovementUseCase
	projectID string
	orderID   string
	itemID    string
}

func newFixture(t *testing.T, stock int64) *fixture {
	t.Helper()
	f := &fixture{
		ctx:       context.Background(),
		store:     memory.NewStore(),
		projectID: uuid.NewString(),
		orderID:   uuid.NewString(),
		itemID:    uuid.NewString(),
	}
	f.store.SeedItem(entity.Item{ID: f.itemID, Code: "X", Name: "Ítem X", UnitWeight: decimal.RequireFromString("0.5")})
	f.store.SeedProject(entity.Project{ID: f.projectID})
	f.store.SeedOrder(entity.Order{ID: f.orderID, ProjectID: f.projectID})
	f.uc = allocation.NewUseCase(f.store, nil)
	f.movements = appinv.NewMovementUseCase(f.store, nil)
	if stock > 0 {
		_, err := f.movements.RecordMovement(f.ctx, "user-1", nil, appinv.MovementLine{
			Variant: f.variant(), Quantity: stock,
		})
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) variant() entity.VariantKey { return entity.VariantKey{ItemID: f.itemID} }

func (f *fixture) box(t *testing.T, orderID string) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, f.store.Run(f.ctx, func(r ports.Repositories) error {
		return r.Boxes.Create(f.ctx, &entity.Box{ID: id, ProjectID: f.projectID, OrderID: orderID, TotalWeight: decimal.Zero})
	}))
	return id
}

func (f *fixture) stock(t *testing.T) int64 {
	t.Helper()
	snap, err := f.movements.GetStock(f.ctx, f.itemID)
	require.NoError(t, err)
	return snap.Quantity
}

func (f *fixture) allocate(boxID string, qty int64) (*allocation.AllocationResult, error) {
	return f.uc.Allocate(f.ctx, allocation.AllocateInput{
		OrderID: f.orderID, Variant: f.variant(), BoxID: boxID, Quantity: qty, UserID: "user-1",
	})
}

func (f *fixture) demand(t *testing.T, qty int64) *allocation.DemandView {
	t.Helper()
	view, err := f.uc.AddDemand(f.ctx, allocation.DemandInput{OrderID: f.orderID, Variant: f.variant(), Quantity: qty})
	require.NoError(t, err)
	return view
}

func TestAllocate_DescuentaStockYRecalculaCaja(t *testing.T) {
	f := newFixture(t, 100)
	f.demand(t, 40)
	b1 := f.box(t, "")

	res, err := f.allocate(b1, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.RemainingQuantity)
	assert.Equal(t, int64(85), res.VariantQuantity)
	assert.Equal(t, int64(85), res.ItemQuantity)
	assert.Equal(t, int64(15), res.Box.TotalQuantity)
	assert.True(t, decimal.RequireFromString("7.5").Equal(res.Box.TotalWeight))
	assert.Nil(t, res.DeliveryNote)
	assert.Equal(t, int64(85), f.stock(t))
}

func TestAllocate_SobreasignacionRechazada(t *testing.T) {
	f := newFixture(t, 100)
	f.demand(t, 40)
	b1, b2 := f.box(t, ""), f.box(t, "")
	_, err := f.allocate(b1, 15)
	require.NoError(t, err)

	_, err = f.allocate(b2, 30)
	require.ErrorIs(t, err, domain.ErrOverAllocation)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, int64(85), f.stock(t))

	views, err := f.uc.ListDemand(f.ctx, f.orderID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(25), views[0].Remaining)
}

func TestAllocate_SinDemandaLaCrea(t *testing.T) {
	f := newFixture(t, 10)
	b := f.box(t, "")
	res, err := f.allocate(b, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RemainingQuantity)

	views, err := f.uc.ListDemand(f.ctx, f.orderID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(4), views[0].Item.Quantity)
}

func TestAllocate_StockInsuficiente(t *testing.T) {
	f := newFixture(t, 5)
	f.demand(t, 40)
	_, err := f.allocate(f.box(t, ""), 6)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stock(t))
}

func TestAllocate_CajaDeOtroPedido(t *testing.T) {
	f := newFixture(t, 10)
	f.demand(t, 5)
	other := uuid.NewString()
	f.store.SeedOrder(entity.Order{ID: other, ProjectID: f.projectID})
	_, err := f.allocate(f.box(t, other), 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.allocate(uuid.NewString(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAllocation_AplicaDiferencia(t *testing.T) {
	f := newFixture(t, 100)
	f.demand(t, 40)
	res, err := f.allocate(f.box(t, ""), 15)
	require.NoError(t, err)

	up, err := f.uc.UpdateAllocation(f.ctx, res.Item.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), up.VariantQuantity)
	assert.Equal(t, int64(0), up.RemainingQuantity)
	assert.Equal(t, int64(40), up.Box.TotalQuantity)

	_, err = f.uc.UpdateAllocation(f.ctx, res.Item.ID, 41)
	require.ErrorIs(t, err, domain.ErrOverAllocation)

	down, err := f.uc.UpdateAllocation(f.ctx, res.Item.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(90), down.VariantQuantity)
	assert.Equal(t, int64(30), down.RemainingQuantity)
}

func TestUpdateAllocation_StockInsuficiente(t *testing.T) {
	f := newFixture(t, 20)
	f.demand(t, 100)
	res, err := f.allocate(f.box(t, ""), 15)
	require.NoError(t, err)

	_, err = f.uc.UpdateAllocation(f.ctx, res.Item.ID, 21)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), f.stock(t))
}

func TestDeallocate_ReasignarRestauraSaldo(t *testing.T) {
	f := newFixture(t, 100)
	f.demand(t, 40)
	b := f.box(t, "")
	res, err := f.allocate(b, 15)
	require.NoError(t, err)
	before := f.stock(t)

	out, err := f.uc.Deallocate(f.ctx, res.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.VariantQuantity)
	assert.Equal(t, int64(40), out.RemainingQuantity)
	assert.Equal(t, int64(0), out.Box.TotalQuantity)

	_, err = f.allocate(b, 15)
	require.NoError(t, err)
	assert.Equal(t, before, f.stock(t))

	_, err = f.uc.Deallocate(f.ctx, res.Item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDemand_UpsertActualizarYBorrar(t *testing.T) {
	f := newFixture(t, 100)
	first := f.demand(t, 10)
	second := f.demand(t, 5)
	assert.Equal(t, first.Item.ID, second.Item.ID)
	assert.Equal(t, int64(15), second.Item.Quantity)

	res, err := f.allocate(f.box(t, ""), 12)
	require.NoError(t, err)

	_, err = f.uc.UpdateDemand(f.ctx, first.Item.ID, 11)
	require.ErrorIs(t, err, domain.ErrOverAllocation)
	view, err := f.uc.UpdateDemand(f.ctx, first.Item.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Remaining)

	err = f.uc.DeleteDemand(f.ctx, first.Item.ID)
	require.ErrorIs(t, err, domain.ErrAllocationConflict)

	_, err = f.uc.Deallocate(f.ctx, res.Item.ID)
	require.NoError(t, err)
	require.NoError(t, f.uc.DeleteDemand(f.ctx, first.Item.ID))
	views, err := f.uc.ListDemand(f.ctx, f.orderID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestFinalizada_CongelaDemandaYAsignaciones(t *testing.T) {
	f := newFixture(t, 100)
	view := f.demand(t, 40)
	res, err := f.allocate(f.box(t, ""), 10)
	require.NoError(t, err)

	poID := uuid.NewString()
	now := time.Now()
	require.NoError(t, f.store.Run(f.ctx, func(r ports.Repositories) error {
		if err := r.ProductionOrders.Create(f.ctx, &entity.ProductionOrder{ID: poID, ProjectID: f.projectID, PlannedQuantity: 40}); err != nil {
			return err
		}
		if err := r.ProductionOrders.CreateStatus(f.ctx, &entity.ProductionOrderStatus{
			ID: uuid.NewString(), ProductionOrderID: poID, Status: entity.ProductionStatusOpen, CreatedAt: now,
		}); err != nil {
			return err
		}
		return r.ProductionOrders.CreateStatus(f.ctx, &entity.ProductionOrderStatus{
			ID: uuid.NewString(), ProductionOrderID: poID, Status: entity.ProductionStatusFinished, CreatedAt: now.Add(time.Minute),
		})
	}))

	_, err = f.uc.AddDemand(f.ctx, allocation.DemandInput{OrderID: f.orderID, Variant: f.variant(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	_, err = f.uc.UpdateDemand(f.ctx, view.Item.ID, 50)
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	assert.ErrorIs(t, f.uc.DeleteDemand(f.ctx, view.Item.ID), domain.ErrAllocationConflict)
	_, err = f.allocate(f.box(t, ""), 1)
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	_, err = f.uc.UpdateAllocation(f.ctx, res.Item.ID, 5)
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	_, err = f.uc.Deallocate(f.ctx, res.Item.ID)
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)

	assert.Equal(t, int64(90), f.stock(t))
}

func TestAllocate_Validacion(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.uc.Allocate(f.ctx, allocation.AllocateInput{OrderID: f.orderID, Variant: f.variant(), BoxID: f.box(t, ""), Quantity: 0, UserID: "u"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.uc.UpdateAllocation(f.ctx, "no-uuid", 3)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
