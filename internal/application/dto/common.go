package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto y acota Limit a 500.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 500 {
		p.Limit = 500
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VariantDTO clave de variante en requests y responses.
type VariantDTO struct {
	ItemID          string `json:"item_id"`
	ItemFeatureID   string `json:"item_feature_id,omitempty"`
	FeatureOptionID string `json:"feature_option_id,omitempty"`
}

// FeaturePairDTO par característica/opción adicional.
type FeaturePairDTO struct {
	ItemFeatureID   string `json:"item_feature_id"`
	FeatureOptionID string `json:"feature_option_id"`
}

// QuantityRequest body para los PUT que solo cambian una cantidad.
type QuantityRequest struct {
	Quantity int64 `json:"quantity"`
}
