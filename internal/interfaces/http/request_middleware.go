package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

const headerIdempotencyKey = "Idempotency-Key"

// RequestLogger adjunta al UserContext un logger con request_id y registra cada petición al terminar.
// Va después de requestid.New().
func RequestLogger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := base.With().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http request")
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}

// Idempotency rechaza con 409 DUPLICATE_REQUEST una mutación cuya Idempotency-Key ya se procesó.
// Sin cabecera la petición pasa tal cual. La clave se libera si la operación falla,
// así el cliente puede reintentar.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(headerIdempotencyKey)
		if key == "" || store == nil {
			return c.Next()
		}
		scoped := GetCompanyID(c) + ":" + GetUserID(c) + ":" + c.Method() + ":" + c.Path() + ":" + key
		fresh, err := store.MarkProcessed(c.UserContext(), scoped, ttl)
		if err != nil {
			logger.FromContext(c.UserContext()).Warn().Err(err).Msg("idempotency store no disponible")
			return c.Next()
		}
		if !fresh {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_REQUEST", Message: "la solicitud ya fue procesada"})
		}
		err = c.Next()
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			store.Release(context.WithoutCancel(c.UserContext()), scoped)
		}
		return err
	}
}
