package entity

import "github.com/shopspring/decimal"

// Item ítem del catálogo (gestionado fuera del núcleo; aquí solo lectura).
type Item struct {
	ID         string
	CompanyID  string
	Code       string
	Name       string
	UnitWeight decimal.Decimal // kg por unidad, usado en los totales de cajas y remitos
}
