package advisor

import (
	"encoding/json"
	"fmt"

	"retaildesk/models"

	"github.com/shopspring/decimal"
)

// briefSalesWindow is how many of the most recent sales entries go into a brief.
const briefSalesWindow = 7

// FieldType is a primitive JSON type allowed in a response schema.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldInteger FieldType = "integer"
	FieldBoolean FieldType = "boolean"
)

// SchemaField is one property of a structured response.
type SchemaField struct {
	Name string
	Type FieldType
}

// ResponseSchema constrains the model output to a flat JSON object.
type ResponseSchema struct {
	Fields []SchemaField
}

// Prompt is a model-ready instruction. Schema is nil for free text.
type Prompt struct {
	Text   string
	Schema *ResponseSchema
}

// salesEntry is a SalesMetric with revenue rendered as a JSON number.
type salesEntry struct {
	Date      string      `json:"date"`
	Revenue   json.Number `json:"revenue"`
	UnitsSold int         `json:"unitsSold"`
	Category  string      `json:"category"`
}

// StockAlert is the reduced view of a low-stock item sent to the model.
type StockAlert struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

var briefSchema = &ResponseSchema{
	Fields: []SchemaField{
		{Name: "summary", Type: FieldString},
		{Name: "recommendation", Type: FieldString},
	},
}

// RecentSales returns at most the last n entries of sales, never nil.
func RecentSales(sales []models.SalesMetric, n int) []models.SalesMetric {
	if len(sales) > n {
		sales = sales[len(sales)-n:]
	}
	out := make([]models.SalesMetric, len(sales))
	copy(out, sales)
	return out
}

// ProjectStockAlerts keeps only sku, name and stock of each item, in input order.
func ProjectStockAlerts(items []models.InventoryItem) []StockAlert {
	alerts := make([]StockAlert, 0, len(items))
	for _, i := range items {
		alerts = append(alerts, StockAlert{SKU: i.SKU, Name: i.StyleName, Stock: i.StockLevel})
	}
	return alerts
}

// BuildBriefPrompt creates the executive brief instruction and its JSON shape.
func BuildBriefPrompt(sales []models.SalesMetric, lowStock []models.InventoryItem) Prompt {
	recent := RecentSales(sales, briefSalesWindow)
	entries := make([]salesEntry, 0, len(recent))
	for _, m := range recent {
		entries = append(entries, salesEntry{
			Date:      m.Date,
			Revenue:   json.Number(m.Revenue.String()),
			UnitsSold: m.UnitsSold,
			Category:  m.Category,
		})
	}
	salesContext, _ := json.Marshal(entries)
	stockContext, _ := json.Marshal(ProjectStockAlerts(lowStock))

	text := fmt.Sprintf(`
    Act as a Chief Financial Officer and Retail Supply Chain Expert for a luxury sports apparel brand.
    Analyze the following recent sales data and low-stock inventory alerts.

    Sales Context (Last %d entries): %s
    Low Stock Alerts: %s

    Provide a response in JSON format with two fields:
    1. "summary": A concise executive summary of performance (max 2 sentences).
    2. "recommendation": A specific strategic action regarding restocking or promotions (max 2 sentences).
`, briefSalesWindow, salesContext, stockContext)

	return Prompt{Text: text, Schema: briefSchema}
}

// BuildGLCodePrompt asks the model to pick a ledger code for a purchased item.
func BuildGLCodePrompt(productName string, category models.Category, cost decimal.Decimal) string {
	var table string
	for _, c := range KnownGLCodes {
		table += fmt.Sprintf("      - %s: %s\n", c.Code, c.Label)
	}

	return fmt.Sprintf(`
      You are an automated accounting assistant for a retail ERP.
      Suggest a General Ledger (GL) code for the following item purchase:
      Item: %s
      Category: %s
      Cost: $%s

      Standard Codes:
%s
      Return ONLY the 4-digit code.
`, productName, category, cost.String(), table)
}
