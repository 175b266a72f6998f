package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/production"
)

// ProductionHandler órdenes de producción (protegido).
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de producción
// @Description  Planificado = suma de las líneas. Nace en estado Aberto.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductionOrderRequest  true  "project_id e items"
// @Success      201  {object}  dto.ProductionOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-orders [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ProductionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]production.ItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, production.ItemInput{Variant: toKey(it.Variant), Quantity: it.Quantity})
	}
	view, err := h.uc.Create(c.UserContext(), production.CreateInput{ProjectID: in.ProjectID, UserID: userID, Items: items})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionResponse(view))
}

// Get godoc
// @Summary      Obtener orden de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-orders/{id} [get]
func (h *ProductionHandler) Get(c *fiber.Ctx) error {
	view, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductionResponse(view))
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la orden
// @Description  Finalizada es terminal y fija close_date; congela los pedidos del proyecto.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la orden"
// @Param        body  body  dto.StatusRequest  true  "Aberto | Parcial | Finalizada"
// @Success      200  {object}  dto.ProductionOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production-orders/{id}/statuses [post]
func (h *ProductionHandler) ChangeStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	view, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in.Status, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductionResponse(view))
}
