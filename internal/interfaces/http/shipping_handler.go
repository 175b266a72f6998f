package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/shipping"
)

// ShippingHandler cajas y remitos (protegido).
type ShippingHandler struct {
	uc *shipping.UseCase
}

// NewShippingHandler construye el handler.
func NewShippingHandler(uc *shipping.UseCase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

// CreateBox godoc
// @Summary      Crear caja vacía
// @Description  Con order_id la caja solo acepta asignaciones de ese pedido.
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BoxRequest  true  "project_id, customer_id, order_id, package_id"
// @Success      201  {object}  dto.BoxResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes [post]
func (h *ShippingHandler) CreateBox(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.BoxRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	box, err := h.uc.CreateBox(c.UserContext(), shipping.BoxInput{
		ProjectID: in.ProjectID, CustomerID: in.CustomerID, OrderID: in.OrderID, PackageID: in.PackageID, UserID: userID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBoxResponse(box, nil))
}

// GetBox godoc
// @Summary      Obtener caja con sus asignaciones
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la caja"
// @Success      200  {object}  dto.BoxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{id} [get]
func (h *ShippingHandler) GetBox(c *fiber.Ctx) error {
	view, err := h.uc.GetBox(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toBoxResponse(view.Box, view.Items))
}

// DeleteBox godoc
// @Summary      Eliminar caja
// @Description  Devuelve al stock cada asignación y recalcula el remito que la contenía.
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la caja"
// @Success      200  {object}  dto.DeleteBoxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/boxes/{id} [delete]
func (h *ShippingHandler) DeleteBox(c *fiber.Ctx) error {
	res, err := h.uc.DeleteBox(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeleteBoxResponse{Released: res.Released, DeliveryNote: toNoteResponse(res.DeliveryNote, nil)})
}

// CreateDeliveryNote godoc
// @Summary      Crear remito
// @Description  Las cajas de box_ids se vinculan en la misma transacción.
// @Tags         delivery-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string                   false  "Clave para evitar remitos duplicados"
// @Param        body             body    dto.DeliveryNoteRequest  true   "Datos del remito"
// @Success      201  {object}  dto.DeliveryNoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/delivery-notes [post]
func (h *ShippingHandler) CreateDeliveryNote(c *fiber.Ctx) error {
	var in dto.DeliveryNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	view, err := h.uc.CreateDeliveryNote(c.UserContext(), shipping.DeliveryNoteInput{
		ProjectID:    in.ProjectID,
		CustomerID:   in.CustomerID,
		OrderID:      in.OrderID,
		InvoiceID:    in.InvoiceID,
		ExpeditionID: in.ExpeditionID,
		BoxIDs:       in.BoxIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toNoteResponse(view.Note, view.Boxes))
}

// GetDeliveryNote godoc
// @Summary      Obtener remito con sus cajas
// @Tags         delivery-notes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del remito"
// @Success      200  {object}  dto.DeliveryNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id} [get]
func (h *ShippingHandler) GetDeliveryNote(c *fiber.Ctx) error {
	view, err := h.uc.GetDeliveryNote(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toNoteResponse(view.Note, view.Boxes))
}

// AddBox godoc
// @Summary      Vincular caja a remito
// @Tags         delivery-notes
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del remito"
// @Param        boxId  path  string  true  "ID de la caja"
// @Success      200  {object}  dto.DeliveryNoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id}/boxes/{boxId} [post]
func (h *ShippingHandler) AddBox(c *fiber.Ctx) error {
	note, err := h.uc.AddBox(c.UserContext(), c.Params("id"), c.Params("boxId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toNoteResponse(note, nil))
}

// RemoveBox godoc
// @Summary      Desvincular caja de remito
// @Tags         delivery-notes
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del remito"
// @Param        boxId  path  string  true  "ID de la caja"
// @Success      200  {object}  dto.DeliveryNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id}/boxes/{boxId} [delete]
func (h *ShippingHandler) RemoveBox(c *fiber.Ctx) error {
	note, err := h.uc.RemoveBox(c.UserContext(), c.Params("id"), c.Params("boxId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toNoteResponse(note, nil))
}

// DeleteDeliveryNote godoc
// @Summary      Eliminar remito
// @Description  Las cajas quedan sueltas; sus asignaciones no cambian.
// @Tags         delivery-notes
// @Security     Bearer
// @Param        id  path  string  true  "ID del remito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery-notes/{id} [delete]
func (h *ShippingHandler) DeleteDeliveryNote(c *fiber.Ctx) error {
	if err := h.uc.DeleteDeliveryNote(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
