package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Box contenedor físico. TotalQuantity/TotalWeight se recalculan desde sus BoxItem.
type Box struct {
	ID             string
	DeliveryNoteID string
	ProjectID      string
	CustomerID     string
	OrderID        string
	PackageID      string
	UserID         string
	TotalQuantity  int64
	TotalWeight    decimal.Decimal
	CreatedAt      time.Time
}

// InDeliveryNote indica si la caja está vinculada a un remito.
func (b Box) InDeliveryNote() bool { return b.DeliveryNoteID != "" }

// BoxItem registro de asignación: cantidad de un OrderItem empacada en una caja.
type BoxItem struct {
	ID          string
	BoxID       string
	OrderItemID string
	Key         VariantKey
	Quantity    int64
	UserID      string
	UnitWeight  decimal.Decimal // lectura: peso unitario del ítem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
