package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
)

// MovementHandler libro de movimientos y consultas de saldo (protegido).
type MovementHandler struct {
	uc *appinv.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appinv.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar movimiento de stock
// @Description  Cantidad firmada: positiva entra, negativa sale. Un débito sin saldo suficiente se rechaza.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string               false  "Clave para evitar dobles registros"
// @Param        body             body    dto.MovementRequest  true   "variant, quantity, source, production_order_id"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordMovement(c.UserContext(), userID, toSource(in.Source), toLine(in.MovementLineDTO))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(out))
}

// RecordBatch godoc
// @Summary      Registrar movimiento de varias líneas
// @Description  Todas las líneas se aplican o ninguna.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string                    false  "Clave para evitar dobles registros"
// @Param        body             body    dto.BatchMovementRequest  true   "source y lines"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/batch [post]
func (h *MovementHandler) RecordBatch(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.BatchMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]appinv.MovementLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, toLine(l))
	}
	out, err := h.uc.RecordBatch(c.UserContext(), appinv.RecordInput{UserID: userID, Source: toSource(in.Source), Lines: lines})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(out))
}

// GetStock godoc
// @Summary      Saldo de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{itemId} [get]
func (h *MovementHandler) GetStock(c *fiber.Ctx) error {
	snap, err := h.uc.GetStock(c.UserContext(), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(snap))
}

// ListEntries godoc
// @Summary      Libro de movimientos de un ítem
// @Description  Más recientes primero.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "Máximo 500 (defecto 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.LedgerPageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{itemId}/entries [get]
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: queryInt(c, "limit", 0), Offset: queryInt(c, "offset", 0)}
	page.DefaultPage()
	entries, err := h.uc.ListEntries(c.UserContext(), c.Params("itemId"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.LedgerPageResponse{
		Entries: make([]dto.LedgerEntryResponse, 0, len(entries)),
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, toEntryResponse(e))
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Conciliar saldos con el libro
// @Description  Compara cada saldo con Σ libro − Σ asignaciones. No corrige.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/items/{itemId}/reconcile [get]
func (h *MovementHandler) Reconcile(c *fiber.Ctx) error {
	report, err := h.uc.ReconcileItem(c.UserContext(), c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toReconcileResponse(report))
}
