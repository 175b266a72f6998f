package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// BoxTotals totales derivados de una caja.
type BoxTotals struct {
	Quantity int64
	Weight   decimal.Decimal
}

// RollupBox pliega los BoxItem actuales en los totales de la caja.
func RollupBox(items []*entity.BoxItem) BoxTotals {
	t := BoxTotals{Weight: decimal.Zero}
	for _, it := range items {
		t.Quantity += it.Quantity
		t.Weight = t.Weight.Add(it.UnitWeight.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return t
}

// DeliveryNoteTotals totales derivados de un remito.
type DeliveryNoteTotals struct {
	BoxQuantity int64
	Quantity    int64
	Weight      decimal.Decimal
}

// RollupDeliveryNote pliega las cajas vinculadas en los totales del remito.
func RollupDeliveryNote(boxes []*entity.Box) DeliveryNoteTotals {
	t := DeliveryNoteTotals{Weight: decimal.Zero}
	for _, b := range boxes {
		t.BoxQuantity++
		t.Quantity += b.TotalQuantity
		t.Weight = t.Weight.Add(b.TotalWeight)
	}
	return t
}

// ApplyBoxTotals escribe los totales en la caja.
func ApplyBoxTotals(b *entity.Box, t BoxTotals) {
	b.TotalQuantity = t.Quantity
	b.TotalWeight = t.Weight
}

// ApplyDeliveryNoteTotals escribe los totales en el remito.
func ApplyDeliveryNoteTotals(n *entity.DeliveryNote, t DeliveryNoteTotals) {
	n.BoxQuantity = t.BoxQuantity
	n.TotalQuantity = t.Quantity
	n.TotalWeight = t.Weight
}
