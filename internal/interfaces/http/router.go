package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	"github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/production"
	"github.com/jhoicas/logistica-api/internal/application/shipping"
	"github.com/jhoicas/logistica-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC     *inventory.MovementUseCase
	AllocationUC   *allocation.UseCase
	ShippingUC     *shipping.UseCase
	ProductionUC   *production.UseCase
	JWTSecret      string
	JWTIssuer      string
	Idempotency    ports.IdempotencyStore
	IdempotencyTTL time.Duration
}

// Router registra las rutas de la API. Todas requieren Bearer Token; las lecturas
// admiten cualquier rol y las mutaciones pasan por RequireRole.
func Router(app *fiber.App, deps RouterDeps) {
	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	idem := Idempotency(deps.Idempotency, deps.IdempotencyTTL)
	warehouse := RequireRole(jwt.RoleBodeguero)
	dispatch := RequireRole(jwt.RoleDespacho)

	// Libro de movimientos y saldos
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := protected.Group("/movements")
	movements.Post("/", warehouse, idem, movementHandler.Record)
	movements.Post("/batch", warehouse, idem, movementHandler.RecordBatch)

	stock := protected.Group("/stock/items")
	stock.Get("/:itemId", movementHandler.GetStock)
	stock.Get("/:itemId/entries", movementHandler.ListEntries)
	stock.Get("/:itemId/reconcile", warehouse, movementHandler.Reconcile)

	// Demanda y asignaciones
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	protected.Get("/orders/:orderId/items", allocationHandler.ListDemand)
	protected.Post("/orders/:orderId/items", dispatch, idem, allocationHandler.AddDemand)
	protected.Put("/order-items/:id", dispatch, allocationHandler.UpdateDemand)
	protected.Delete("/order-items/:id", dispatch, allocationHandler.DeleteDemand)

	protected.Post("/allocations", dispatch, idem, allocationHandler.Allocate)
	protected.Put("/box-items/:id", dispatch, allocationHandler.UpdateAllocation)
	protected.Delete("/box-items/:id", dispatch, allocationHandler.Deallocate)

	// Cajas y remitos
	shippingHandler := NewShippingHandler(deps.ShippingUC)
	boxes := protected.Group("/boxes")
	boxes.Post("/", dispatch, idem, shippingHandler.CreateBox)
	boxes.Get("/:id", shippingHandler.GetBox)
	boxes.Delete("/:id", dispatch, shippingHandler.DeleteBox)

	notes := protected.Group("/delivery-notes")
	notes.Post("/", dispatch, idem, shippingHandler.CreateDeliveryNote)
	notes.Get("/:id", shippingHandler.GetDeliveryNote)
	notes.Delete("/:id", dispatch, shippingHandler.DeleteDeliveryNote)
	notes.Post("/:id/boxes/:boxId", dispatch, shippingHandler.AddBox)
	notes.Delete("/:id/boxes/:boxId", dispatch, shippingHandler.RemoveBox)

	// Producción
	productionHandler := NewProductionHandler(deps.ProductionUC)
	prod := protected.Group("/production-orders")
	prod.Post("/", warehouse, idem, productionHandler.Create)
	prod.Get("/:id", productionHandler.Get)
	prod.Post("/:id/statuses", warehouse, productionHandler.ChangeStatus)
}
