package entity

import "time"

// Estados de una orden de producción.
const (
	ProductionStatusOpen     = "Aberto"
	ProductionStatusPartial  = "Parcial"
	ProductionStatusFinished = "Finalizada" // terminal
)

// IsValidProductionStatus indica si s es un estado conocido.
func IsValidProductionStatus(s string) bool {
	switch s {
	case ProductionStatusOpen, ProductionStatusPartial, ProductionStatusFinished:
		return true
	}
	return false
}

// ProductionOrder registro de abastecimiento: cantidad planificada vs entregada.
type ProductionOrder struct {
	ID                string
	ProjectID         string
	PlannedQuantity   int64
	DeliveredQuantity int64
	CloseDate         *time.Time
	CreatedAt         time.Time
}

// RemainingQuantity cantidad planificada aún no entregada.
func (p ProductionOrder) RemainingQuantity() int64 {
	return p.PlannedQuantity - p.DeliveredQuantity
}

// ProductionOrderItem línea de una orden de producción.
type ProductionOrderItem struct {
	ID                string
	ProductionOrderID string
	Key               VariantKey
	Quantity          int64
}

// ProductionOrderStatus evento de estado; el vigente es el de created_at más reciente.
type ProductionOrderStatus struct {
	ID                string
	ProductionOrderID string
	Status            string
	UserID            string
	CreatedAt         time.Time
}
