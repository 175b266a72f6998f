package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/inventory"
)

func TestCanApply(t *testing.T) {
	cases := []struct {
		name    string
		exists  bool
		current int64
		delta   int64
		want    bool
	}{
		{"crédito sin fila", false, 0, 100, true},
		{"débito sin fila", false, 0, -1, false},
		{"débito cubierto exacto", true, 10, -10, true},
		{"débito descubierto", true, 9, -10, false},
		{"crédito con saldo", true, 5, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.CanApply(tc.exists, tc.current, tc.delta))
		})
	}
}

func TestRemaining_SoloCuentaMismaOpcion(t *testing.T) {
	demand := &entity.OrderItem{ID: "oi-1", Key: entity.VariantKey{ItemID: "x", FeatureOptionID: "opt-a"}, Quantity: 40}
	allocs := []*entity.BoxItem{
		{OrderItemID: "oi-1", Key: entity.VariantKey{ItemID: "x", FeatureOptionID: "opt-a"}, Quantity: 15},
		{OrderItemID: "oi-1", Key: entity.VariantKey{ItemID: "x", FeatureOptionID: "opt-b"}, Quantity: 7},
		{OrderItemID: "oi-2", Key: entity.VariantKey{ItemID: "x", FeatureOptionID: "opt-a"}, Quantity: 3},
	}
	assert.Equal(t, int64(15), inventory.AllocatedFor(demand, allocs))
	assert.Equal(t, int64(25), inventory.Remaining(demand, allocs))
}

func TestExpectedBalance(t *testing.T) {
	entries := []*entity.LedgerEntry{{Quantity: 100}, {Quantity: -20}, {Quantity: 5}}
	allocs := []*entity.BoxItem{{Quantity: 15}, {Quantity: 30}}
	assert.Equal(t, int64(40), inventory.ExpectedBalance(entries, allocs))
}

func TestSumVariants(t *testing.T) {
	assert.Equal(t, int64(0), inventory.SumVariants(nil))
	assert.Equal(t, int64(12), inventory.SumVariants([]*entity.VariantStock{{Quantity: 10}, {Quantity: 2}}))
}

func TestRollupBox(t *testing.T) {
	items := []*entity.BoxItem{
		{Quantity: 15, UnitWeight: decimal.RequireFromString("0.5")},
		{Quantity: 4, UnitWeight: decimal.RequireFromString("1.25")},
	}
	totals := inventory.RollupBox(items)
	assert.Equal(t, int64(19), totals.Quantity)
	assert.True(t, decimal.RequireFromString("12.5").Equal(totals.Weight), "peso: %s", totals.Weight)

	empty := inventory.RollupBox(nil)
	assert.Equal(t, int64(0), empty.Quantity)
	assert.True(t, empty.Weight.IsZero())
}

func TestRollupDeliveryNote(t *testing.T) {
	boxes := []*entity.Box{
		{TotalQuantity: 15, TotalWeight: decimal.NewFromInt(3)},
		{TotalQuantity: 30, TotalWeight: decimal.RequireFromString("4.5")},
	}
	totals := inventory.RollupDeliveryNote(boxes)
	assert.Equal(t, int64(2), totals.BoxQuantity)
	assert.Equal(t, int64(45), totals.Quantity)
	assert.True(t, decimal.RequireFromString("7.5").Equal(totals.Weight))

	var note entity.DeliveryNote
	inventory.ApplyDeliveryNoteTotals(&note, totals)
	assert.Equal(t, int64(2), note.BoxQuantity)
	assert.Equal(t, int64(45), note.TotalQuantity)
}

func TestLatestStatus(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	statuses := []*entity.ProductionOrderStatus{
		{Status: entity.ProductionStatusFinished, CreatedAt: base.Add(2 * time.Hour)},
		{Status: entity.ProductionStatusOpen, CreatedAt: base},
		{Status: entity.ProductionStatusPartial, CreatedAt: base.Add(time.Hour)},
	}
	latest := inventory.LatestStatus(statuses)
	require.NotNil(t, latest)
	assert.Equal(t, entity.ProductionStatusFinished, latest.Status)
	assert.True(t, inventory.IsFinished(statuses))

	assert.Nil(t, inventory.LatestStatus(nil))
	assert.False(t, inventory.IsFinished(nil))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, inventory.CanTransition("", entity.ProductionStatusOpen))
	assert.True(t, inventory.CanTransition(entity.ProductionStatusOpen, entity.ProductionStatusFinished))
	assert.True(t, inventory.CanTransition(entity.ProductionStatusPartial, entity.ProductionStatusOpen))
	assert.False(t, inventory.CanTransition(entity.ProductionStatusFinished, entity.ProductionStatusOpen))
	assert.False(t, inventory.CanTransition(entity.ProductionStatusFinished, entity.ProductionStatusFinished))
	assert.False(t, inventory.CanTransition(entity.ProductionStatusOpen, "Cancelada"))
}
