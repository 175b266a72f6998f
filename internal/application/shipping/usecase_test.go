package shipping_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/shipping"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
)

type env struct {
	ctx       context.Context
	movements *appinv.MovementUseCase
	alloc     *allocation.UseCase
	uc        *shipping.UseCase
	projectID string
	orderID   string
	itemID    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	e := &env{ctx: context.Background(), projectID: uuid.NewString(), orderID: uuid.NewString(), itemID: uuid.NewString()}
	store.SeedItem(entity.Item{ID: e.itemID, Code: "X", Name: "Ítem X", UnitWeight: decimal.RequireFromString("0.25")})
	store.SeedProject(entity.Project{ID: e.projectID})
	store.SeedOrder(entity.Order{ID: e.orderID, ProjectID: e.projectID})
	e.movements = appinv.NewMovementUseCase(store, nil)
	e.alloc = allocation.NewUseCase(store, nil)
	e.uc = shipping.NewUseCase(store, e.alloc, nil)
	return e
}

func (e *env) key() entity.VariantKey { return entity.VariantKey{ItemID: e.itemID} }

func (e *env) newBox(t *testing.T) *entity.Box {
	t.Helper()
	b, err := e.uc.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, UserID: "user-1"})
	require.NoError(t, err)
	return b
}

func (e *env) stock(t *testing.T) int64 {
	t.Helper()
	snap, err := e.movements.GetStock(e.ctx, e.itemID)
	require.NoError(t, err)
	return snap.Quantity
}

func (e *env) allocate(boxID string, qty int64) (*allocation.AllocationResult, error) {
	return e.alloc.Allocate(e.ctx, allocation.AllocateInput{
		OrderID: e.orderID, Variant: e.key(), BoxID: boxID, Quantity: qty, UserID: "user-1",
	})
}

// Recorrido completo: +100, demanda 40, 15 a B1, 30 a B2 (rechazado), borrar B1.
func TestEscenarioCompleto(t *testing.T) {
	e := newEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(100), e.stock(t))

	demand, err := e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 40})
	require.NoError(t, err)
	assert.Equal(t, int64(40), demand.Item.Quantity)

	b1, b2 := e.newBox(t), e.newBox(t)
	res, err := e.allocate(b1.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(85), e.stock(t))
	assert.Equal(t, int64(15), res.Box.TotalQuantity)
	assert.Equal(t, int64(25), res.RemainingQuantity)

	_, err = e.allocate(b2.ID, 30)
	require.ErrorIs(t, err, domain.ErrOverAllocation)
	assert.Equal(t, int64(85), e.stock(t))

	out, err := e.uc.DeleteBox(e.ctx, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Released)
	assert.Equal(t, int64(100), e.stock(t))
	_, err = e.uc.GetBox(e.ctx, b1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	views, err := e.alloc.ListDemand(e.ctx, e.orderID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(40), views[0].Remaining)

	report, err := e.movements.ReconcileItem(e.ctx, e.itemID)
	require.NoError(t, err)
	assert.True(t, report.Consistent())
}

func TestRemito_TotalesDesdeCajas(t *testing.T) {
	e := newEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 100})
	require.NoError(t, err)
	_, err = e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 60})
	require.NoError(t, err)

	b1, b2 := e.newBox(t), e.newBox(t)
	_, err = e.allocate(b1.ID, 20)
	require.NoError(t, err)
	_, err = e.allocate(b2.ID, 10)
	require.NoError(t, err)

	view, err := e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{b1.ID}})
	require.NoError(t, err)
	noteID := view.Note.ID
	assert.Equal(t, int64(1), view.Note.BoxQuantity)
	assert.Equal(t, int64(20), view.Note.TotalQuantity)
	assert.True(t, decimal.NewFromInt(5).Equal(view.Note.TotalWeight))

	note, err := e.uc.AddBox(e.ctx, noteID, b2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), note.BoxQuantity)
	assert.Equal(t, int64(30), note.TotalQuantity)

	// agregar de nuevo la misma caja no cambia nada
	note, err = e.uc.AddBox(e.ctx, noteID, b2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), note.BoxQuantity)

	// una asignación nueva en una caja del remito recalcula el remito
	res, err := e.allocate(b2.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, res.DeliveryNote)
	assert.Equal(t, int64(35), res.DeliveryNote.TotalQuantity)

	note, err = e.uc.RemoveBox(e.ctx, noteID, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.BoxQuantity)
	assert.Equal(t, int64(15), note.TotalQuantity)

	_, err = e.uc.RemoveBox(e.ctx, noteID, b1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(65), e.stock(t))
}

func TestRemito_CajaEnOtroRemito(t *testing.T) {
	e := newEnv(t)
	b := e.newBox(t)
	first, err := e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{b.ID}})
	require.NoError(t, err)
	second, err := e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID})
	require.NoError(t, err)

	_, err = e.uc.AddBox(e.ctx, second.Note.ID, b.ID)
	require.ErrorIs(t, err, domain.ErrAllocationConflict)

	_, err = e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{b.ID}})
	require.ErrorIs(t, err, domain.ErrAllocationConflict)

	got, err := e.uc.GetDeliveryNote(e.ctx, first.Note.ID)
	require.NoError(t, err)
	assert.Len(t, got.Boxes, 1)
}

func TestDeleteDeliveryNote_NoTocaStock(t *testing.T) {
	e := newEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 10})
	require.NoError(t, err)
	b := e.newBox(t)
	_, err = e.allocate(b.ID, 4)
	require.NoError(t, err)
	view, err := e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{b.ID}})
	require.NoError(t, err)

	require.NoError(t, e.uc.DeleteDeliveryNote(e.ctx, view.Note.ID))
	got, err := e.uc.GetBox(e.ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.Box.InDeliveryNote())
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(6), e.stock(t))

	_, err = e.uc.GetDeliveryNote(e.ctx, view.Note.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBox_EnRemitoRecalcula(t *testing.T) {
	e := newEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 10})
	require.NoError(t, err)
	_, err = e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 10})
	require.NoError(t, err)
	b1, b2 := e.newBox(t), e.newBox(t)
	_, err = e.allocate(b1.ID, 3)
	require.NoError(t, err)
	_, err = e.allocate(b2.ID, 2)
	require.NoError(t, err)
	view, err := e.uc.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{b1.ID, b2.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.Note.TotalQuantity)

	out, err := e.uc.DeleteBox(e.ctx, b1.ID)
	require.NoError(t, err)
	require.NotNil(t, out.DeliveryNote)
	assert.Equal(t, int64(1), out.DeliveryNote.BoxQuantity)
	assert.Equal(t, int64(2), out.DeliveryNote.TotalQuantity)
	assert.Equal(t, int64(8), e.stock(t))
}

func TestCreateBox_Validacion(t *testing.T) {
	e := newEnv(t)
	_, err := e.uc.CreateBox(e.ctx, shipping.BoxInput{UserID: "u"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = e.uc.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, OrderID: uuid.NewString(), UserID: "u"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
