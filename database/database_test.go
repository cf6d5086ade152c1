package database

import (
	"errors"
	"math"
	"testing"
	"time"

	"retaildesk/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withClock overrides the journal date source.
func (s *Store) withClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func TestSeededDatasets(t *testing.T) {
	s := Seeded()

	assert.Len(t, s.SalesMetrics(), 7)
	assert.Len(t, s.CategorySales(), 3)
	assert.Len(t, s.InventoryItems(""), 5)

	low := s.LowStockItems()
	require.Len(t, low, 2)
	assert.Equal(t, "LX-RN-001", low[0].SKU)
	assert.Equal(t, "LX-LG-004", low[1].SKU)

	for _, i := range s.InventoryItems("") {
		assert.Equal(t, models.DeriveStatus(i.StockLevel, i.ReorderPoint), i.Status, i.SKU)
	}
}

func TestSummary(t *testing.T) {
	sum := Seeded().Summary()
	assert.True(t, decimal.NewFromInt(25550).Equal(sum.TotalRevenue))
	assert.Equal(t, 2, sum.StockAlerts)
	assert.Equal(t, "12.5", sum.RevenueGrowthPct.String())
}

func TestInventoryItems_FilterAndLookup(t *testing.T) {
	s := Seeded()

	out := s.InventoryItems(models.StatusOutOfStock)
	require.Len(t, out, 1)
	assert.Equal(t, "Core Leggings", out[0].StyleName)

	item, err := s.InventoryItem("3")
	require.NoError(t, err)
	assert.Equal(t, "LX-VS-002", item.SKU)

	_, err = s.InventoryItem("missing")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestReadsReturnCopies(t *testing.T) {
	s := Seeded()
	sales := s.SalesMetrics()
	sales[0].Date = "changed"
	assert.Equal(t, "Mon", s.SalesMetrics()[0].Date)
}

func TestReceiveStock_ExistingVariant(t *testing.T) {
	day := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := Seeded().withClock(func() time.Time { return day })

	item, tx, err := s.ReceiveStock(models.Receipt{
		SKU: "LX-RN-001", StyleName: "Velocity Runner", Size: "10", Color: "neon",
		Qty: 10, Cost: decimal.NewFromInt(44), GLCode: "5002",
	}, models.CategoryFootwear)
	require.NoError(t, err)

	assert.Equal(t, "1", item.ID)
	assert.Equal(t, 12, item.StockLevel)
	assert.Equal(t, models.StatusInStock, item.Status)
	assert.Len(t, s.LowStockItems(), 1)

	assert.Equal(t, "2026-03-02", tx.Date)
	assert.Equal(t, models.Debit, tx.Type)
	assert.Equal(t, "5002", tx.GLCode)
	assert.True(t, decimal.NewFromInt(440).Equal(tx.Amount))
	assert.Len(t, s.GLTransactions(), 1)
}

func TestReceiveStock_NewVariant(t *testing.T) {
	s := NewStore()

	item, _, err := s.ReceiveStock(models.Receipt{
		SKU: "LX-RN-005", StyleName: "Velocity Runner", Size: "11", Color: "Neon",
		Qty: 3, Cost: decimal.NewFromInt(45), GLCode: "5000-GENERIC",
	}, models.CategoryFootwear)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 3, item.StockLevel)
	assert.Equal(t, DefaultReorderPoint, item.ReorderPoint)
	assert.Equal(t, models.StatusLowStock, item.Status)
	assert.Len(t, s.InventoryItems(""), 1)
}

func TestReceiveStock_Invalid(t *testing.T) {
	s := NewStore()
	for _, r := range []models.Receipt{
		{StyleName: "x", Qty: 1},
		{SKU: "LX-1", Qty: 1},
		{SKU: "LX-1", StyleName: "x", Qty: 0},
		{SKU: "LX-1", StyleName: "x", Qty: 1, Cost: decimal.NewFromInt(-1)},
		{SKU: "LX-1", StyleName: "x", Qty: MaxReceiptQty + 1},
		{SKU: "LX-1", StyleName: "x", Qty: math.MaxInt},
	} {
		_, _, err := s.ReceiveStock(r, models.CategoryApparel)
		assert.ErrorIs(t, err, ErrInvalidReceipt)
	}
	assert.Empty(t, s.GLTransactions())
}

func TestReceiveStock_CategoryMismatch(t *testing.T) {
	s := Seeded()

	_, _, err := s.ReceiveStock(models.Receipt{
		SKU: "LX-RN-001", StyleName: "Velocity Runner", Size: "10", Color: "Neon",
		Qty: 1, Cost: decimal.NewFromInt(45),
	}, models.CategoryApparel)
	assert.ErrorIs(t, err, ErrCategoryMismatch)

	item, _ := s.InventoryItem("1")
	assert.Equal(t, 2, item.StockLevel)
	assert.Empty(t, s.GLTransactions())
}
