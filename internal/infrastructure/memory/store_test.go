package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
)

const seedJSON = `{
  "items": [{"id": "11111111-1111-1111-1111-111111111111", "code": "CJ-1", "name": "Cajonera", "unit_weight": "2.5"}],
  "projects": [{"id": "22222222-2222-2222-2222-222222222222"}],
  "orders": [{"id": "33333333-3333-3333-3333-333333333333", "project_id": "22222222-2222-2222-2222-222222222222"}]
}`

func TestLoadSeed_CargaCatalogo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	n, err := s.LoadSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	item, err := s.Repos().Items.GetByID(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, decimal.RequireFromString("2.5").Equal(item.UnitWeight))

	order, err := s.Repos().Orders.GetByID(ctx, "33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", order.ProjectID)
}

func TestLoadSeed_JSONInvalido(t *testing.T) {
	_, err := memory.NewStore().LoadSeed(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestRun_ErrorRestauraEstado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	s.SeedItem(entity.Item{ID: "item-1", UnitWeight: decimal.Zero})

	boom := errors.New("boom")
	err := s.Run(ctx, func(r ports.Repositories) error {
		if _, err := r.Stock.GetOrCreateItemStock(ctx, "item-1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stock, err := s.Repos().Stock.GetItemStock(ctx, "item-1")
	require.NoError(t, err)
	assert.Nil(t, stock, "la transacción fallida no debe dejar rastro")
}

func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().Run(ctx, func(ports.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCreate_ExigeProyectoYPedido(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	_, err := s.LoadSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	const (
		project = "22222222-2222-2222-2222-222222222222"
		order   = "33333333-3333-3333-3333-333333333333"
		missing = "99999999-9999-9999-9999-999999999999"
	)
	r := s.Repos()

	err = r.ProductionOrders.Create(ctx, &entity.ProductionOrder{ID: "po-1", ProjectID: missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, r.ProductionOrders.Create(ctx, &entity.ProductionOrder{ID: "po-2", ProjectID: project}))

	err = r.Boxes.Create(ctx, &entity.Box{ID: "b-1", ProjectID: missing, TotalWeight: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = r.Boxes.Create(ctx, &entity.Box{ID: "b-2", ProjectID: project, OrderID: missing, TotalWeight: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, r.Boxes.Create(ctx, &entity.Box{ID: "b-3", ProjectID: project, OrderID: order, TotalWeight: decimal.Zero}))

	err = r.DeliveryNotes.Create(ctx, &entity.DeliveryNote{ID: "n-1", ProjectID: missing, TotalWeight: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = r.DeliveryNotes.Create(ctx, &entity.DeliveryNote{ID: "n-2", ProjectID: project, OrderID: missing, TotalWeight: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, r.DeliveryNotes.Create(ctx, &entity.DeliveryNote{ID: "n-3", ProjectID: project, TotalWeight: decimal.Zero}))

	box, err := r.Boxes.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Nil(t, box)
}

func TestOrderItems_CreateIfAbsentNoSuma(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	_, err := s.LoadSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	const order = "33333333-3333-3333-3333-333333333333"
	key := entity.VariantKey{ItemID: "11111111-1111-1111-1111-111111111111"}
	r := s.Repos()

	require.NoError(t, r.OrderItems.CreateIfAbsent(ctx, &entity.OrderItem{ID: "oi-1", OrderID: order, Key: key, Quantity: 7}))
	require.NoError(t, r.OrderItems.CreateIfAbsent(ctx, &entity.OrderItem{ID: "oi-2", OrderID: order, Key: key, Quantity: 5}))

	demand, err := r.OrderItems.FindForUpdate(ctx, order, key)
	require.NoError(t, err)
	require.NotNil(t, demand)
	assert.Equal(t, "oi-1", demand.ID)
	assert.Equal(t, int64(7), demand.Quantity)

	err = r.OrderItems.CreateIfAbsent(ctx, &entity.OrderItem{OrderID: "99999999-9999-9999-9999-999999999999", Key: key, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
