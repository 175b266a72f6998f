package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/validation"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

type sample struct {
	Variant  entity.VariantKey `json:"variant"`
	Quantity int64             `json:"quantity" validate:"ne=0"`
}

const itemID = "3f1c2a4e-8b6d-4c1a-9e2f-0a1b2c3d4e5f"
const featureID = "6a7b8c9d-0e1f-4a2b-8c3d-4e5f6a7b8c9d"

func TestStruct_Valido(t *testing.T) {
	err := validation.Struct(sample{Variant: entity.VariantKey{ItemID: itemID}, Quantity: 5})
	assert.NoError(t, err)
}

func TestStruct_CamposFaltantes(t *testing.T) {
	err := validation.Struct(sample{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "variant.item_id")
	assert.Contains(t, err.Error(), "quantity")
}

func TestStruct_OpcionObligatoriaConCaracteristica(t *testing.T) {
	err := validation.Struct(sample{
		Variant:  entity.VariantKey{ItemID: itemID, ItemFeatureID: featureID},
		Quantity: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "feature_option_id")
}

func TestStruct_UUIDInvalido(t *testing.T) {
	err := validation.Struct(sample{Variant: entity.VariantKey{ItemID: "no-es-uuid"}, Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UUID")
}
