package handlers

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// HandleVersion prints the build information of the running binary.
// GET /api/v1/version
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("no build information available")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.SendString("<pre>\n" + info.String() + "</pre>\n")
}

// HandleHealth reports liveness and whether AI features are enabled.
// GET /api/v1/health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"aiConfigured": h.Advisor.Configured(),
	})
}
