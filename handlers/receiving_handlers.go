package handlers

import (
	"errors"
	"strings"

	"retaildesk/advisor"
	"retaildesk/database"
	"retaildesk/models"
	"retaildesk/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleReceiveStock books received stock and journals its cost.
// POST /api/v1/receiving
func (h *Handler) HandleReceiveStock(c *fiber.Ctx) error {
	var req models.Receipt
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.SKU = utils.NormalizeSKU(req.SKU)
	req.StyleName = strings.TrimSpace(req.StyleName)
	req.Color = strings.TrimSpace(req.Color)
	req.Size = strings.TrimSpace(req.Size)
	req.GLCode = strings.TrimSpace(req.GLCode)

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Category must be one of Apparel, Footwear, Accessories")
	}

	if req.GLCode == "" {
		req.GLCode = advisor.GenericGLCode
	} else if !advisor.IsAcceptedGLCode(req.GLCode) {
		return errorResponse(c, fiber.StatusBadRequest, "Unknown GL code")
	}

	item, tx, err := h.Store.ReceiveStock(req, category)
	if err != nil {
		if errors.Is(err, database.ErrInvalidReceipt) {
			return errorResponse(c, fiber.StatusBadRequest, "SKU, style name, a quantity between 1 and 100000 and a non-negative cost are required")
		}
		if errors.Is(err, database.ErrCategoryMismatch) {
			return errorResponse(c, fiber.StatusBadRequest, "Category does not match the existing item")
		}
		h.Log.Error("receive stock failed", zap.Error(err), zap.String("sku", req.SKU))
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to receive stock")
	}

	h.Log.Info("stock received",
		zap.String("sku", item.SKU),
		zap.Int("qty", req.Qty),
		zap.Int("stock_level", item.StockLevel),
		zap.String("gl_code", tx.GLCode),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Stock received",
		"data": fiber.Map{
			"item":        item,
			"transaction": tx,
		},
	})
}

// HandleListGLTransactions returns the journal lines booked in this session.
// GET /api/v1/receiving/transactions
func (h *Handler) HandleListGLTransactions(c *fiber.Ctx) error {
	return successResponse(c, h.Store.GLTransactions())
}
