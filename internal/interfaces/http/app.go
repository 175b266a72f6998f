package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewApp crea la app Fiber del servicio. Immutable: los parámetros de ruta y el cuerpo
// se copian, porque los casos de uso (y el almacén en memoria) conservan esos strings
// más allá de la petición.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		Immutable:    true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
