package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrAllocationConflict = errors.New("conflicto de asignación")
	ErrOverAllocation     = errors.New("la asignación supera la cantidad pedida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrDuplicateRequest   = errors.New("solicitud duplicada")
)

// ErrInvalidInput se conserva como alias de ErrValidation para los adaptadores HTTP.
var ErrInvalidInput = ErrValidation

// NotFound envuelve ErrNotFound con el recurso y su id.
func NotFound(resource, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, resource, id)
}

// Invalid envuelve ErrValidation con un mensaje legible.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Conflict envuelve ErrAllocationConflict con un mensaje legible.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrAllocationConflict, msg)
}

// InsufficientStock describe el déficit de una variante.
func InsufficientStock(variant string, available, requested int64) error {
	return fmt.Errorf("%w: variante %s disponible %d, solicitado %d", ErrInsufficientStock, variant, available, requested)
}

// OverAllocation describe cuánto excede la asignación a la demanda.
func OverAllocation(orderItemID string, demand, allocated, requested int64) error {
	return fmt.Errorf("%w: ítem de pedido %s pedido %d, asignado %d, solicitado %d",
		ErrOverAllocation, orderItemID, demand, allocated, requested)
}

// IsNotFound, IsValidation, IsConflict: predicados de conveniencia.
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool {
	return errors.Is(err, ErrAllocationConflict) || errors.Is(err, ErrOverAllocation)
}
