package handlers

import (
	"errors"

	"retaildesk/database"
	"retaildesk/models"
	"retaildesk/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListInventory lists inventory items with optional status filter and paging.
// GET /api/v1/inventory?status=low-stock&page=1&pageSize=10
func (h *Handler) HandleListInventory(c *fiber.Ctx) error {
	var status models.StockStatus
	if raw := c.Query("status"); raw != "" {
		st, ok := models.ParseStockStatus(raw)
		if !ok {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		status = st
	}

	items := h.Store.InventoryItems(status)
	pagination := utils.CreatePagination(len(items), c.QueryInt("page", 1), c.QueryInt("pageSize", 10))
	start, end := pagination.Bounds()

	return successResponse(c, fiber.Map{
		"items":      items[start:end],
		"pagination": pagination,
	})
}

// HandleGetInventoryItem returns one inventory item.
// GET /api/v1/inventory/:itemId
func (h *Handler) HandleGetInventoryItem(c *fiber.Ctx) error {
	item, err := h.Store.InventoryItem(c.Params("itemId"))
	if err != nil {
		if errors.Is(err, database.ErrItemNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Inventory item not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch inventory item")
	}
	return successResponse(c, item)
}
