package dto

import "time"

// ProductionOrderItemDTO línea planificada.
type ProductionOrderItemDTO struct {
	ID       string     `json:"id,omitempty"`
	Variant  VariantDTO `json:"variant"`
	Quantity int64      `json:"quantity"`
}

// ProductionOrderRequest body para POST /api/production-orders.
type ProductionOrderRequest struct {
	ProjectID string                   `json:"project_id"`
	Items     []ProductionOrderItemDTO `json:"items"`
}

// StatusRequest body para POST /api/production-orders/:id/statuses.
type StatusRequest struct {
	Status string `json:"status"` // Aberto | Parcial | Finalizada
}

// ProductionOrderResponse orden con estado vigente y pendiente.
type ProductionOrderResponse struct {
	ID                string                   `json:"id"`
	ProjectID         string                   `json:"project_id"`
	PlannedQuantity   int64                    `json:"planned_quantity"`
	DeliveredQuantity int64                    `json:"delivered_quantity"`
	RemainingQuantity int64                    `json:"remaining_quantity"`
	Status            string                   `json:"status,omitempty"`
	CloseDate         *time.Time               `json:"close_date,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	Items             []ProductionOrderItemDTO `json:"items"`
}
