package entity

import "time"

// Movement cabecera de un movimiento del libro; agrupa una o más entradas (lote).
type Movement struct {
	ID        string
	Source    EntityRef
	UserID    string
	CreatedAt time.Time
}

// LedgerEntry delta firmado e inmutable sobre una variante. Las correcciones son entradas nuevas
// con signo opuesto; nunca se actualiza ni se borra.
type LedgerEntry struct {
	ID                 string
	MovementID         string
	Key                VariantKey
	Quantity           int64
	ProductionOrderID  string // si está, la entrada acumula delivered_quantity de esa orden
	AdditionalFeatures []FeaturePair
	CreatedAt          time.Time
}

// IsDebit indica si la entrada descuenta stock.
func (e LedgerEntry) IsDebit() bool { return e.Quantity < 0 }
