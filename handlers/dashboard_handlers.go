package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboardSummary returns the KPI cards.
// GET /api/v1/dashboard/summary
func (h *Handler) HandleGetDashboardSummary(c *fiber.Ctx) error {
	return successResponse(c, h.Store.Summary())
}

// HandleGetSalesTrend returns the daily revenue series.
// GET /api/v1/dashboard/sales
func (h *Handler) HandleGetSalesTrend(c *fiber.Ctx) error {
	return successResponse(c, h.Store.SalesMetrics())
}

// HandleGetCategorySales returns revenue grouped by category.
// GET /api/v1/dashboard/sales/by-category
func (h *Handler) HandleGetCategorySales(c *fiber.Ctx) error {
	return successResponse(c, h.Store.CategorySales())
}

// HandleGetLowStock returns the stock alert list.
// GET /api/v1/dashboard/low-stock
func (h *Handler) HandleGetLowStock(c *fiber.Ctx) error {
	return successResponse(c, h.Store.LowStockItems())
}
