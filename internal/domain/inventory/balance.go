package inventory

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// CanApply indica si un delta firmado puede aplicarse sobre el saldo actual sin dejarlo negativo.
// Los créditos siempre se aceptan; un débito exige que exista la fila (exists) y que cubra el monto.
func CanApply(exists bool, current, delta int64) bool {
	if delta >= 0 {
		return true
	}
	return exists && current >= -delta
}

// SumVariants saldo de ítem como suma de sus variantes (recalculado, no incrementado).
func SumVariants(variants []*entity.VariantStock) int64 {
	var total int64
	for _, v := range variants {
		total += v.Quantity
	}
	return total
}

// Remaining cantidad pendiente de asignar: demanda − Σ asignaciones que comparten
// (OrderItemID, FeatureOptionID). Puede ser negativa si los datos heredados están sobreasignados.
func Remaining(demand *entity.OrderItem, allocations []*entity.BoxItem) int64 {
	return demand.Quantity - AllocatedFor(demand, allocations)
}

// AllocatedFor suma las asignaciones del ítem de pedido con la misma opción de característica.
func AllocatedFor(demand *entity.OrderItem, allocations []*entity.BoxItem) int64 {
	var sum int64
	for _, a := range allocations {
		if a.OrderItemID == demand.ID && a.Key.FeatureOptionID == demand.Key.FeatureOptionID {
			sum += a.Quantity
		}
	}
	return sum
}

// ExpectedBalance saldo esperado de una variante: Σ libro − Σ asignaciones activas.
func ExpectedBalance(entries []*entity.LedgerEntry, allocations []*entity.BoxItem) int64 {
	var total int64
	for _, e := range entries {
		total += e.Quantity
	}
	for _, a := range allocations {
		total -= a.Quantity
	}
	return total
}
