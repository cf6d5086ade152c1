package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a fresh one.
func RequestID(c *fiber.Ctx) error {
	id := c.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals("requestID", id)
	c.Set(HeaderRequestID, id)
	return c.Next()
}

// RequestLogger logs one line per request after the handler chain has run.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if id, ok := c.Locals("requestID").(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("request", append(fields, zap.Error(err))...)
		} else {
			log.Info("request", fields...)
		}
		return err
	}
}

// ErrorHandler renders unhandled errors in the API's error body shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{"status": "error", "message": message})
}
