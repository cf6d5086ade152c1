package database

import (
	"retaildesk/models"

	"github.com/shopspring/decimal"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Seeded returns a store loaded with the dashboard's mock week.
func Seeded() *Store {
	s := NewStore()
	s.sales = []models.SalesMetric{
		{Date: "Mon", Revenue: money(4000), UnitsSold: 24, Category: "Apparel"},
		{Date: "Tue", Revenue: money(3000), UnitsSold: 18, Category: "Apparel"},
		{Date: "Wed", Revenue: money(2000), UnitsSold: 12, Category: "Apparel"},
		{Date: "Thu", Revenue: money(2780), UnitsSold: 20, Category: "Footwear"},
		{Date: "Fri", Revenue: money(1890), UnitsSold: 15, Category: "Footwear"},
		{Date: "Sat", Revenue: money(6390), UnitsSold: 45, Category: "Accessories"},
		{Date: "Sun", Revenue: money(5490), UnitsSold: 38, Category: "Apparel"},
	}
	s.categorySales = []models.CategorySales{
		{Name: "Apparel", Value: money(45000)},
		{Name: "Footwear", Value: money(32000)},
		{Name: "Access.", Value: money(12000)},
	}
	s.items = []models.InventoryItem{
		{ID: "1", SKU: "LX-RN-001", StyleName: "Velocity Runner", Category: models.CategoryFootwear, Size: "10", Color: "Neon", StockLevel: 2, ReorderPoint: 5, Cost: money(45), Price: money(120), Status: models.StatusLowStock},
		{ID: "2", SKU: "LX-LG-004", StyleName: "Core Leggings", Category: models.CategoryApparel, Size: "M", Color: "Black", StockLevel: 0, ReorderPoint: 10, Cost: money(20), Price: money(85), Status: models.StatusOutOfStock},
		{ID: "3", SKU: "LX-VS-002", StyleName: "AeroSwift Running Vest", Category: models.CategoryApparel, Size: "L", Color: "White", StockLevel: 34, ReorderPoint: 8, Cost: money(28), Price: money(95), Status: models.StatusInStock},
		{ID: "4", SKU: "LX-BG-010", StyleName: "Tour Duffel", Category: models.CategoryAccessories, Size: "OS", Color: "Graphite", StockLevel: 15, ReorderPoint: 4, Cost: money(60), Price: money(180), Status: models.StatusInStock},
		{ID: "5", SKU: "LX-TR-007", StyleName: "Trail Apex", Category: models.CategoryFootwear, Size: "9", Color: "Slate", StockLevel: 21, ReorderPoint: 6, Cost: money(52), Price: money(150), Status: models.StatusInStock},
	}
	return s
}

// Summary computes the KPI cards. Growth and turnover are fixed mock figures.
func (s *Store) Summary() models.DashboardSummary {
	total := decimal.Zero
	for _, m := range s.SalesMetrics() {
		total = total.Add(m.Revenue)
	}
	return models.DashboardSummary{
		TotalRevenue:      total,
		RevenueGrowthPct:  decimal.RequireFromString("12.5"),
		InventoryTurnover: decimal.RequireFromString("4.2"),
		TurnoverRange: models.KpiRange{
			Min: decimal.RequireFromString("4.0"),
			Max: decimal.RequireFromString("6.0"),
		},
		StockAlerts: len(s.LowStockItems()),
	}
}
