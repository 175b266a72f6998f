package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryNote remito. BoxQuantity/TotalQuantity/TotalWeight se recalculan desde sus cajas.
type DeliveryNote struct {
	ID            string
	InvoiceID     string
	ProjectID     string
	CustomerID    string
	OrderID       string
	ExpeditionID  string
	BoxQuantity   int64
	TotalQuantity int64
	TotalWeight   decimal.Decimal
	CreatedAt     time.Time
}
