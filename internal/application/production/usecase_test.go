package production_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/production"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
)

func newStore(t *testing.T) (*memory.Store, string, string) {
	t.Helper()
	store := memory.NewStore()
	itemID, projectID := uuid.NewString(), uuid.NewString()
	store.SeedItem(entity.Item{ID: itemID, Code: "P", Name: "Pieza", UnitWeight: decimal.NewFromInt(1)})
	store.SeedProject(entity.Project{ID: projectID})
	return store, itemID, projectID
}

func TestCreate_PlanificadoEsSumaDeLineas(t *testing.T) {
	ctx := context.Background()
	store, itemID, projectID := newStore(t)
	uc := production.NewUseCase(store)
	opt := entity.VariantKey{ItemID: itemID, ItemFeatureID: uuid.NewString(), FeatureOptionID: uuid.NewString()}

	view, err := uc.Create(ctx, production.CreateInput{ProjectID: projectID, UserID: "user-1", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: itemID}, Quantity: 30},
		{Variant: opt, Quantity: 20},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), view.Order.PlannedQuantity)
	assert.Equal(t, int64(0), view.Order.DeliveredQuantity)
	assert.Equal(t, entity.ProductionStatusOpen, view.Status.Status)

	got, err := uc.Get(ctx, view.Order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, int64(50), got.Remaining)
}

func TestCreate_Validacion(t *testing.T) {
	store, itemID, projectID := newStore(t)
	uc := production.NewUseCase(store)
	_, err := uc.Create(context.Background(), production.CreateInput{ProjectID: projectID, UserID: "u"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(context.Background(), production.CreateInput{ProjectID: projectID, UserID: "u", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: itemID}, Quantity: -1},
	}})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Create(context.Background(), production.CreateInput{ProjectID: projectID, UserID: "u", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: uuid.NewString()}, Quantity: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntregasDesdeMovimientos(t *testing.T) {
	ctx := context.Background()
	store, itemID, projectID := newStore(t)
	uc := production.NewUseCase(store)
	movements := appinv.NewMovementUseCase(store, nil)

	view, err := uc.Create(ctx, production.CreateInput{ProjectID: projectID, UserID: "user-1", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: itemID}, Quantity: 50},
	}})
	require.NoError(t, err)

	_, err = movements.RecordMovement(ctx, "user-1", nil, appinv.MovementLine{
		Variant: entity.VariantKey{ItemID: itemID}, Quantity: 20, ProductionOrderID: view.Order.ID,
	})
	require.NoError(t, err)

	got, err := uc.Get(ctx, view.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Order.DeliveredQuantity)
	assert.Equal(t, int64(30), got.Remaining)
}

func TestChangeStatus_FinalizadaEsTerminal(t *testing.T) {
	ctx := context.Background()
	store, itemID, projectID := newStore(t)
	uc := production.NewUseCase(store)
	view, err := uc.Create(ctx, production.CreateInput{ProjectID: projectID, UserID: "user-1", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: itemID}, Quantity: 5},
	}})
	require.NoError(t, err)
	id := view.Order.ID

	got, err := uc.ChangeStatus(ctx, id, entity.ProductionStatusPartial, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductionStatusPartial, got.Status.Status)
	assert.Nil(t, got.Order.CloseDate)

	got, err = uc.ChangeStatus(ctx, id, entity.ProductionStatusFinished, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductionStatusFinished, got.Status.Status)
	assert.NotNil(t, got.Order.CloseDate)

	_, err = uc.ChangeStatus(ctx, id, entity.ProductionStatusOpen, "user-1")
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	_, err = uc.ChangeStatus(ctx, id, "Cerrado", "user-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.ChangeStatus(ctx, uuid.NewString(), entity.ProductionStatusPartial, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinalizada_BloqueaAsignacionDelProyecto(t *testing.T) {
	ctx := context.Background()
	store, itemID, projectID := newStore(t)
	orderID := uuid.NewString()
	store.SeedOrder(entity.Order{ID: orderID, ProjectID: projectID})
	uc := production.NewUseCase(store)
	alloc := allocation.NewUseCase(store, nil)

	view, err := uc.Create(ctx, production.CreateInput{ProjectID: projectID, UserID: "user-1", Items: []production.ItemInput{
		{Variant: entity.VariantKey{ItemID: itemID}, Quantity: 5},
	}})
	require.NoError(t, err)

	in := allocation.DemandInput{OrderID: orderID, Variant: entity.VariantKey{ItemID: itemID}, Quantity: 3}
	_, err = alloc.AddDemand(ctx, in)
	require.NoError(t, err)

	_, err = uc.ChangeStatus(ctx, view.Order.ID, entity.ProductionStatusFinished, "user-1")
	require.NoError(t, err)
	_, err = alloc.AddDemand(ctx, in)
	assert.ErrorIs(t, err, domain.ErrAllocationConflict)
}
