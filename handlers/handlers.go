package handlers

import (
	"retaildesk/advisor"
	"retaildesk/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	Store   *database.Store
	Advisor *advisor.Advisor
	Log     *zap.Logger
}

// New creates a Handler.
func New(store *database.Store, adv *advisor.Advisor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Advisor: adv, Log: log}
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": message})
}

func successResponse(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"status": "success", "data": data})
}
