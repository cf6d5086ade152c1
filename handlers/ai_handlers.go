package handlers

import (
	"strings"

	"retaildesk/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleGenerateExecutiveBrief asks the advisor for a summary of the current
// week and the stock alerts. It always answers 200; the outcome field tells
// whether the text came from the model or is a fallback.
// POST /api/v1/dashboard/brief
func (h *Handler) HandleGenerateExecutiveBrief(c *fiber.Ctx) error {
	sales := h.Store.SalesMetrics()
	lowStock := h.Store.LowStockItems()

	brief, outcome := h.Advisor.Brief(c.UserContext(), sales, lowStock)
	h.Log.Info("executive brief generated",
		zap.String("outcome", string(outcome)),
		zap.Int("sales_entries", len(sales)),
		zap.Int("low_stock_items", len(lowStock)),
	)

	return successResponse(c, models.BriefResponse{ExecutiveBrief: brief, Outcome: string(outcome)})
}

// HandleSuggestGLCode suggests a ledger code for an item being received.
// POST /api/v1/receiving/gl-code
func (h *Handler) HandleSuggestGLCode(c *fiber.Ctx) error {
	var req models.GLCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.StyleName = strings.TrimSpace(req.StyleName)
	if req.StyleName == "" || !req.Cost.IsPositive() {
		return errorResponse(c, fiber.StatusBadRequest, "Style name and a positive cost are required")
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Category must be one of Apparel, Footwear, Accessories")
	}

	code, outcome := h.Advisor.GLCode(c.UserContext(), req.StyleName, category, req.Cost)
	return successResponse(c, models.GLCodeSuggestion{GLCode: code, Outcome: string(outcome)})
}
