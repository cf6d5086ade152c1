package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCategory is returned when a category is outside the closed product set.
var ErrInvalidCategory = errors.New("invalid category")

// --- Product Taxonomy ---

// Category is the product family of an inventory item.
type Category string

const (
	CategoryApparel     Category = "Apparel"
	CategoryFootwear    Category = "Footwear"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryApparel, CategoryFootwear, CategoryAccessories}

// ParseCategory matches s case-insensitively against the closed category set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// StockStatus is the availability label shown next to an inventory item.
type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
)

// ParseStockStatus accepts the display label or a slug such as "low-stock".
func ParseStockStatus(s string) (StockStatus, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
	for _, st := range []StockStatus{StatusInStock, StatusLowStock, StatusOutOfStock} {
		if norm == strings.ToLower(string(st)) {
			return st, true
		}
	}
	return "", false
}

// DeriveStatus computes the status label from a stock level and reorder point.
func DeriveStatus(stockLevel, reorderPoint int) StockStatus {
	switch {
	case stockLevel <= 0:
		return StatusOutOfStock
	case stockLevel <= reorderPoint:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// --- Core Models ---

// SalesMetric is one day of recorded sales.
type SalesMetric struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"unitsSold"`
	Category  string          `json:"category"`
}

// InventoryItem is a SKU-level stock record.
type InventoryItem struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	StyleName    string          `json:"styleName"`
	Category     Category        `json:"category"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	StockLevel   int             `json:"stockLevel"`
	ReorderPoint int             `json:"reorderPoint"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Status       StockStatus     `json:"status"`
}

// RefreshStatus re-derives Status from the current stock level.
func (i *InventoryItem) RefreshStatus() {
	i.Status = DeriveStatus(i.StockLevel, i.ReorderPoint)
}

// NeedsAttention reports whether the item belongs on the stock alert list.
func (i InventoryItem) NeedsAttention() bool {
	return i.Status != StatusInStock
}

// CategorySales is a single bar of the "Sales by Category" chart.
type CategorySales struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// --- Accounting ---

// TransactionType is the side of a journal line.
type TransactionType string

const (
	Debit  TransactionType = "Debit"
	Credit TransactionType = "Credit"
)

// GLTransaction records the cost of received stock against a ledger code.
type GLTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	GLCode      string          `json:"glCode"`
	Category    Category        `json:"category"`
}

// Receipt is an inbound logistics entry from the receiving form.
type Receipt struct {
	SKU       string          `json:"sku"`
	StyleName string          `json:"styleName"`
	Category  string          `json:"category"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Qty       int             `json:"qty"`
	Cost      decimal.Decimal `json:"cost"`
	GLCode    string          `json:"glCode"`
}

// --- Dashboard ---

// KpiRange is the optimal band for a KPI.
type KpiRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// DashboardSummary holds the KPI cards of the executive dashboard.
type DashboardSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	RevenueGrowthPct  decimal.Decimal `json:"revenueGrowthPct"`
	InventoryTurnover decimal.Decimal `json:"inventoryTurnover"`
	TurnoverRange     KpiRange        `json:"turnoverRange"`
	StockAlerts       int             `json:"stockAlerts"`
}
