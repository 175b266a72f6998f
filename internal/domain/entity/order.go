package entity

import "time"

// Project proyecto de un cliente (externo; solo se lee para la regla de cierre).
type Project struct {
	ID         string
	CustomerID string
}

// Order pedido de cliente (externo).
type Order struct {
	ID         string
	ProjectID  string
	CustomerID string
}

// OrderItem registro de demanda: cantidad pedida de una variante dentro de un pedido.
// Único por (OrderID, Key).
type OrderItem struct {
	ID        string
	OrderID   string
	Key       VariantKey
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
