package dto

import "time"

// SourceDTO referencia tipada al origen del movimiento.
type SourceDTO struct {
	Kind string `json:"kind"` // box | delivery_note | invoice | expedition | movement
	ID   string `json:"id,omitempty"`
}

// MovementLineDTO una línea del movimiento. Quantity firmada: positiva entra, negativa sale.
type MovementLineDTO struct {
	Variant            VariantDTO       `json:"variant"`
	Quantity           int64            `json:"quantity"`
	ProductionOrderID  string           `json:"production_order_id,omitempty"`
	AdditionalFeatures []FeaturePairDTO `json:"additional_features,omitempty"`
}

// MovementRequest body para POST /api/movements (una línea).
type MovementRequest struct {
	Source *SourceDTO `json:"source,omitempty"`
	MovementLineDTO
}

// BatchMovementRequest body para POST /api/movements/batch (todo o nada).
type BatchMovementRequest struct {
	Source *SourceDTO         `json:"source,omitempty"`
	Lines  []MovementLineDTO `json:"lines"`
}

// LedgerEntryResponse entrada del libro.
type LedgerEntryResponse struct {
	ID                 string           `json:"id"`
	MovementID         string           `json:"movement_id"`
	Variant            VariantDTO       `json:"variant"`
	Quantity           int64            `json:"quantity"`
	ProductionOrderID  string           `json:"production_order_id,omitempty"`
	AdditionalFeatures []FeaturePairDTO `json:"additional_features,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

// MovementEntryResponse entrada registrada con los saldos resultantes.
type MovementEntryResponse struct {
	Entry             LedgerEntryResponse `json:"entry"`
	VariantQuantity   int64               `json:"variant_quantity"`
	ItemQuantity      int64               `json:"item_quantity"`
	DeliveredQuantity *int64              `json:"delivered_quantity,omitempty"`
}

// MovementResponse respuesta de POST /api/movements y /batch.
type MovementResponse struct {
	MovementID string                  `json:"movement_id"`
	Entries    []MovementEntryResponse `json:"entries"`
}

// VariantStockResponse saldo de una variante.
type VariantStockResponse struct {
	ItemFeatureID   string `json:"item_feature_id,omitempty"`
	FeatureOptionID string `json:"feature_option_id,omitempty"`
	Quantity        int64  `json:"quantity"`
}

// StockResponse saldo de un ítem con el desglose por variante.
type StockResponse struct {
	ItemID   string                 `json:"item_id"`
	Quantity int64                  `json:"quantity"`
	Variants []VariantStockResponse `json:"variants"`
}

// LedgerPageResponse página del libro de un ítem.
type LedgerPageResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Page    PageResponse          `json:"page"`
}

// VariantDriftResponse diferencia entre saldo guardado y esperado.
type VariantDriftResponse struct {
	Variant  VariantDTO `json:"variant"`
	Stored   int64      `json:"stored"`
	Expected int64      `json:"expected"`
	Drift    int64      `json:"drift"`
}

// ReconcileResponse resultado de la conciliación de un ítem.
type ReconcileResponse struct {
	ItemID       string                 `json:"item_id"`
	Consistent   bool                   `json:"consistent"`
	ItemStored   int64                  `json:"item_stored"`
	ItemExpected int64                  `json:"item_expected"`
	ItemDrift    int64                  `json:"item_drift"`
	Variants     []VariantDriftResponse `json:"variants"`
}
