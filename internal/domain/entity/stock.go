package entity

import "time"

// ItemStock saldo agregado por ítem. Quantity == Σ VariantStock.Quantity del ítem.
type ItemStock struct {
	ID        string
	ItemID    string
	Quantity  int64
	UpdatedAt time.Time
}

// VariantStock saldo por variante: Σ movimientos del libro − Σ asignaciones activas.
type VariantStock struct {
	ID        string
	StockID   string
	Key       VariantKey
	Quantity  int64
	UpdatedAt time.Time
}

// StockFeature vincula un par característica/opción adicional a una fila de VariantStock.
type StockFeature struct {
	ID             string
	VariantStockID string
	Feature        FeaturePair
}
