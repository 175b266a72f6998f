package entity

import "strings"

// VariantKey identifica una configuración almacenable de un ítem: (ítem, característica?, opción?).
// Cadena vacía = dimensión ausente (NULL en base de datos). Con característica la opción es obligatoria.
type VariantKey struct {
	ItemID          string `json:"item_id" validate:"required,uuid"`
	ItemFeatureID   string `json:"item_feature_id,omitempty" validate:"omitempty,uuid"`
	FeatureOptionID string `json:"feature_option_id,omitempty" validate:"omitempty,uuid"`
}

// HasFeature indica si la variante tiene una característica distintiva.
func (k VariantKey) HasFeature() bool { return k.ItemFeatureID != "" }

// SameVariant compara dos claves dimensión por dimensión.
func (k VariantKey) SameVariant(o VariantKey) bool {
	return k.ItemID == o.ItemID && k.ItemFeatureID == o.ItemFeatureID && k.FeatureOptionID == o.FeatureOptionID
}

// String devuelve item[/feature:option], usado en mensajes y claves de caché.
func (k VariantKey) String() string {
	var b strings.Builder
	b.WriteString(k.ItemID)
	if k.ItemFeatureID != "" || k.FeatureOptionID != "" {
		b.WriteString("/")
		b.WriteString(k.ItemFeatureID)
		b.WriteString(":")
		b.WriteString(k.FeatureOptionID)
	}
	return b.String()
}

// FeaturePair par característica/opción secundario (ej. color junto a talla).
type FeaturePair struct {
	ItemFeatureID   string `json:"item_feature_id" validate:"required,uuid"`
	FeatureOptionID string `json:"feature_option_id" validate:"required,uuid"`
}
