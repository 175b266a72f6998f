package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandRequest body para POST /api/orders/:orderId/items.
type DemandRequest struct {
	Variant  VariantDTO `json:"variant"`
	Quantity int64      `json:"quantity"`
}

// DemandResponse demanda con lo asignado y lo pendiente.
type DemandResponse struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"order_id"`
	Variant           VariantDTO `json:"variant"`
	Quantity          int64      `json:"quantity"`
	AllocatedQuantity int64      `json:"allocated_quantity"`
	RemainingQuantity int64      `json:"remaining_quantity"`
}

// AllocateRequest body para POST /api/allocations.
type AllocateRequest struct {
	OrderID  string     `json:"order_id"`
	BoxID    string     `json:"box_id"`
	Variant  VariantDTO `json:"variant"`
	Quantity int64      `json:"quantity"`
}

// BoxItemResponse asignación dentro de una caja.
type BoxItemResponse struct {
	ID          string     `json:"id"`
	BoxID       string     `json:"box_id"`
	OrderItemID string     `json:"order_item_id"`
	Variant     VariantDTO `json:"variant"`
	Quantity    int64      `json:"quantity"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AllocationResponse asignación con los derivados recalculados.
type AllocationResponse struct {
	Item              BoxItemResponse       `json:"item"`
	RemainingQuantity int64                 `json:"remaining_quantity"`
	VariantQuantity   int64                 `json:"variant_quantity"`
	ItemQuantity      int64                 `json:"item_quantity"`
	Box               BoxResponse           `json:"box"`
	DeliveryNote      *DeliveryNoteResponse `json:"delivery_note,omitempty"`
}

// DeallocateResponse respuesta de DELETE /api/box-items/:id.
type DeallocateResponse struct {
	RemainingQuantity int64                 `json:"remaining_quantity"`
	VariantQuantity   int64                 `json:"variant_quantity"`
	Box               BoxResponse           `json:"box"`
	DeliveryNote      *DeliveryNoteResponse `json:"delivery_note,omitempty"`
}

// BoxRequest body para POST /api/boxes.
type BoxRequest struct {
	ProjectID  string `json:"project_id"`
	CustomerID string `json:"customer_id,omitempty"`
	OrderID    string `json:"order_id,omitempty"`
	PackageID  string `json:"package_id,omitempty"`
}

// BoxResponse caja con sus totales.
type BoxResponse struct {
	ID             string            `json:"id"`
	DeliveryNoteID string            `json:"delivery_note_id,omitempty"`
	ProjectID      string            `json:"project_id"`
	CustomerID     string            `json:"customer_id,omitempty"`
	OrderID        string            `json:"order_id,omitempty"`
	PackageID      string            `json:"package_id,omitempty"`
	TotalQuantity  int64             `json:"total_quantity"`
	TotalWeight    decimal.Decimal   `json:"total_weight"`
	CreatedAt      time.Time         `json:"created_at"`
	Items          []BoxItemResponse `json:"items,omitempty"`
}

// DeleteBoxResponse respuesta de DELETE /api/boxes/:id.
type DeleteBoxResponse struct {
	Released     int                   `json:"released"`
	DeliveryNote *DeliveryNoteResponse `json:"delivery_note,omitempty"`
}

// DeliveryNoteRequest body para POST /api/delivery-notes.
type DeliveryNoteRequest struct {
	ProjectID    string   `json:"project_id"`
	CustomerID   string   `json:"customer_id,omitempty"`
	OrderID      string   `json:"order_id,omitempty"`
	InvoiceID    string   `json:"invoice_id,omitempty"`
	ExpeditionID string   `json:"expedition_id,omitempty"`
	BoxIDs       []string `json:"box_ids,omitempty"`
}

// DeliveryNoteResponse remito con sus totales recalculados.
type DeliveryNoteResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
	ProjectID     string          `json:"project_id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	OrderID       string          `json:"order_id,omitempty"`
	ExpeditionID  string          `json:"expedition_id,omitempty"`
	BoxQuantity   int64           `json:"box_quantity"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalWeight   decimal.Decimal `json:"total_weight"`
	CreatedAt     time.Time       `json:"created_at"`
	Boxes         []BoxResponse   `json:"boxes,omitempty"`
}
