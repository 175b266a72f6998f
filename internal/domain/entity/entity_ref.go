package entity

import "fmt"

// EntityKind conjunto cerrado de entidades que pueden originar un movimiento.
type EntityKind string

const (
	EntityBox          EntityKind = "box"
	EntityDeliveryNote EntityKind = "delivery_note"
	EntityInvoice      EntityKind = "invoice"
	EntityExpedition   EntityKind = "expedition"
	EntityMovement     EntityKind = "movement"
)

// Valid indica si el tipo pertenece al conjunto conocido.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityBox, EntityDeliveryNote, EntityInvoice, EntityExpedition, EntityMovement:
		return true
	}
	return false
}

// EntityRef referencia tipada (tipo + id) a la entidad origen.
type EntityRef struct {
	Kind EntityKind `json:"kind" validate:"required,oneof=box delivery_note invoice expedition movement"`
	ID   string     `json:"id" validate:"omitempty,uuid"`
}

// ParseEntityKind convierte el discriminador almacenado en EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("tipo de entidad desconocido: %q", s)
	}
	return k, nil
}

func (r EntityRef) String() string { return string(r.Kind) + ":" + r.ID }
