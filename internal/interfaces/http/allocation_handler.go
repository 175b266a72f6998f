package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	"github.com/jhoicas/logistica-api/internal/application/dto"
)

// AllocationHandler demanda de pedidos y asignaciones a cajas (protegido).
type AllocationHandler struct {
	uc *allocation.UseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *allocation.UseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

// AddDemand godoc
// @Summary      Agregar demanda a un pedido
// @Description  Si la variante ya está pedida, suma la cantidad.
// @Tags         demand
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        orderId  path  string             true  "ID del pedido"
// @Param        body     body  dto.DemandRequest  true  "variant y quantity"
// @Success      201  {object}  dto.DemandResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/items [post]
func (h *AllocationHandler) AddDemand(c *fiber.Ctx) error {
	var in dto.DemandRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddDemand(c.UserContext(), allocation.DemandInput{
		OrderID: c.Params("orderId"), Variant: toKey(in.Variant), Quantity: in.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDemandResponse(*out))
}

// ListDemand godoc
// @Summary      Demanda de un pedido con asignado y pendiente
// @Tags         demand
// @Security     Bearer
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200  {array}   dto.DemandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/items [get]
func (h *AllocationHandler) ListDemand(c *fiber.Ctx) error {
	list, err := h.uc.ListDemand(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.DemandResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toDemandResponse(v))
	}
	return c.JSON(out)
}

// UpdateDemand godoc
// @Summary      Cambiar la cantidad pedida
// @Description  No puede quedar por debajo de lo ya asignado.
// @Tags         demand
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del ítem de pedido"
// @Param        body  body  dto.QuantityRequest  true  "quantity"
// @Success      200  {object}  dto.DemandResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/order-items/{id} [put]
func (h *AllocationHandler) UpdateDemand(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDemand(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDemandResponse(*out))
}

// DeleteDemand godoc
// @Summary      Eliminar demanda sin asignaciones
// @Tags         demand
// @Security     Bearer
// @Param        id  path  string  true  "ID del ítem de pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/order-items/{id} [delete]
func (h *AllocationHandler) DeleteDemand(c *fiber.Ctx) error {
	if err := h.uc.DeleteDemand(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Allocate godoc
// @Summary      Asignar stock de una variante a una caja
// @Description  Descuenta el saldo y recalcula la caja (y su remito si tiene).
// @Tags         allocations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string               false  "Clave para evitar dobles asignaciones"
// @Param        body             body    dto.AllocateRequest  true   "order_id, box_id, variant, quantity"
// @Success      201  {object}  dto.AllocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocations [post]
func (h *AllocationHandler) Allocate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Allocate(c.UserContext(), allocation.AllocateInput{
		OrderID: in.OrderID, Variant: toKey(in.Variant), BoxID: in.BoxID, Quantity: in.Quantity, UserID: userID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAllocationResponse(out))
}

// UpdateAllocation godoc
// @Summary      Cambiar la cantidad asignada
// @Description  Aplica al saldo solo la diferencia.
// @Tags         allocations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la asignación"
// @Param        body  body  dto.QuantityRequest  true  "quantity"
// @Success      200  {object}  dto.AllocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/box-items/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateAllocation(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toAllocationResponse(out))
}

// Deallocate godoc
// @Summary      Devolver una asignación al stock
// @Tags         allocations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.DeallocateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/box-items/{id} [delete]
func (h *AllocationHandler) Deallocate(c *fiber.Ctx) error {
	out, err := h.uc.Deallocate(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeallocateResponse{
		RemainingQuantity: out.RemainingQuantity,
		VariantQuantity:   out.VariantQuantity,
		Box:               toBoxResponse(out.Box, nil),
		DeliveryNote:      toNoteResponse(out.DeliveryNote, nil),
	})
}
