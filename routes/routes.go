package routes

import (
	"retaildesk/handlers"
	"retaildesk/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with middleware and routes.
func NewApp(h *handlers.Handler, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	app.Use(recover.New())
	app.Use(middleware.RequestID)
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New())

	SetupRoutes(app, h)
	return app
}

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/version", h.HandleVersion)
	api.Get("/health", h.HandleHealth)

	// --- Executive Dashboard ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", h.HandleGetDashboardSummary)
	dashboard.Get("/sales", h.HandleGetSalesTrend)
	dashboard.Get("/sales/by-category", h.HandleGetCategorySales)
	dashboard.Get("/low-stock", h.HandleGetLowStock)
	dashboard.Post("/brief", h.HandleGenerateExecutiveBrief)

	// --- Inventory ---
	inventory := api.Group("/inventory")
	inventory.Get("/", h.HandleListInventory)
	inventory.Get("/:itemId", h.HandleGetInventoryItem)

	// --- Inbound Logistics ---
	receiving := api.Group("/receiving")
	receiving.Post("/gl-code", h.HandleSuggestGLCode)
	receiving.Post("/", h.HandleReceiveStock)
	receiving.Get("/transactions", h.HandleListGLTransactions)
}
