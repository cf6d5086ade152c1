// Package database holds the dashboard datasets in memory for the lifetime
// of the process. Nothing is written to disk.
package database

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"retaildesk/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultReorderPoint is assigned to items first seen through receiving.
	DefaultReorderPoint = 5
	// MaxReceiptQty bounds a single receipt line.
	MaxReceiptQty = 100000
)

var (
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrInvalidReceipt   = errors.New("invalid receipt")
	ErrCategoryMismatch = errors.New("receipt category does not match item")
)

// Store is a mutex-guarded set of mock datasets plus the session GL journal.
type Store struct {
	mu            sync.RWMutex
	sales         []models.SalesMetric
	categorySales []models.CategorySales
	items         []models.InventoryItem
	transactions  []models.GLTransaction
	now           func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// SalesMetrics returns the recorded daily sales, oldest first.
func (s *Store) SalesMetrics() []models.SalesMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SalesMetric{}, s.sales...)
}

// CategorySales returns the sales-by-category bars.
func (s *Store) CategorySales() []models.CategorySales {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CategorySales{}, s.categorySales...)
}

// InventoryItems lists items, optionally filtered by status. An empty status lists everything.
func (s *Store) InventoryItems(status models.StockStatus) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.InventoryItem{}
	for _, i := range s.items {
		if status == "" || i.Status == status {
			items = append(items, i)
		}
	}
	return items
}

// InventoryItem returns the item with the given id.
func (s *Store) InventoryItem(id string) (models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range s.items {
		if i.ID == id {
			return i, nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// LowStockItems returns every item that is low or out of stock, in catalog order.
func (s *Store) LowStockItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.InventoryItem{}
	for _, i := range s.items {
		if i.NeedsAttention() {
			items = append(items, i)
		}
	}
	return items
}

// GLTransactions returns the journal lines recorded by ReceiveStock.
func (s *Store) GLTransactions() []models.GLTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GLTransaction{}, s.transactions...)
}

// ReceiveStock books an inbound receipt. The matching SKU/size/color variant is
// topped up, or a new item is created, and a Debit line is journaled for qty*cost.
func (s *Store) ReceiveStock(r models.Receipt, category models.Category) (models.InventoryItem, models.GLTransaction, error) {
	if r.SKU == "" || r.StyleName == "" || r.Qty <= 0 || r.Qty > MaxReceiptQty || r.Cost.IsNegative() {
		return models.InventoryItem{}, models.GLTransaction{}, ErrInvalidReceipt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findVariant(r.SKU, r.Size, r.Color)
	if idx == -1 {
		s.items = append(s.items, models.InventoryItem{
			ID:           uuid.NewString(),
			SKU:          r.SKU,
			StyleName:    r.StyleName,
			Category:     category,
			Size:         r.Size,
			Color:        r.Color,
			ReorderPoint: DefaultReorderPoint,
			Price:        decimal.Zero,
		})
		idx = len(s.items) - 1
	} else if s.items[idx].Category != category {
		return models.InventoryItem{}, models.GLTransaction{}, fmt.Errorf("%w: %s is %s", ErrCategoryMismatch, r.SKU, s.items[idx].Category)
	}

	item := &s.items[idx]
	item.StockLevel += r.Qty
	item.Cost = r.Cost
	item.RefreshStatus()

	tx := models.GLTransaction{
		ID:          uuid.NewString(),
		Date:        s.now().Format("2006-01-02"),
		Description: fmt.Sprintf("Received %d x %s (%s)", r.Qty, r.StyleName, r.SKU),
		Amount:      r.Cost.Mul(decimal.NewFromInt(int64(r.Qty))),
		Type:        models.Debit,
		GLCode:      r.GLCode,
		Category:    item.Category,
	}
	s.transactions = append(s.transactions, tx)

	return *item, tx, nil
}

func (s *Store) findVariant(sku, size, color string) int {
	for idx, i := range s.items {
		if strings.EqualFold(i.SKU, sku) && strings.EqualFold(i.Size, size) && strings.EqualFold(i.Color, color) {
			return idx
		}
	}
	return -1
}
