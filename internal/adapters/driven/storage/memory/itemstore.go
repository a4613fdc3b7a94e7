// Package memory provides in-memory implementations of driven ports,
// used by service tests and as a reference for the port contracts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is an in-memory implementation of driven.ItemStore.
// It mirrors the SQLite adapter's natural-key semantics.
type ItemStore struct {
	mu     sync.RWMutex
	items  map[int64]domain.Item
	nextID int64
}

// NewItemStore creates a new in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items:  make(map[int64]domain.Item),
		nextID: 1,
	}
}

type naturalKey struct {
	orderID   string
	vendorSKU string
	vendor    string
}

func keyOf(item domain.Item) naturalKey {
	return naturalKey{item.OrderID, item.VendorSKU, item.Vendor}
}

// Upsert inserts or updates an item keyed on its natural key.
func (s *ItemStore) Upsert(
	_ context.Context,
	item domain.Item,
	mode domain.ImportMode,
) (int64, domain.UpsertOutcome, error) {
	if item.OrderID == "" || item.Vendor == "" {
		return 0, "", domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.items {
		if keyOf(existing) != keyOf(item) {
			continue
		}
		if mode == domain.ModeSkipDuplicates {
			return 0, domain.OutcomeSkipped, nil
		}
		existing.Name = item.Name
		existing.Price = item.Price
		existing.Currency = item.Currency
		existing.Quantity = item.Quantity
		existing.PurchaseDate = item.PurchaseDate
		existing.Category = item.Category
		existing.VendorCategory = item.VendorCategory
		existing.OrderURL = item.OrderURL
		existing.ItemURL = item.ItemURL
		s.items[id] = existing
		return id, domain.OutcomeUpdated, nil
	}

	id := s.nextID
	s.nextID++
	item.ID = id
	item.ExportedToVault = false
	s.items[id] = item
	return id, domain.OutcomeInserted, nil
}

// Get retrieves an item by surrogate id.
func (s *ItemStore) Get(_ context.Context, id int64) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// MarkExported sets the exported-to-vault flag. Idempotent.
func (s *ItemStore) MarkExported(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.ExportedToVault = true
	s.items[id] = item
	return nil
}

// EligibleForExport returns exportable items, newest purchases first.
func (s *ItemStore) EligibleForExport(
	_ context.Context,
	minPrice decimal.Decimal,
	categories []string,
) ([]domain.Item, error) {
	if categories == nil {
		categories = domain.ExportableCategories()
	}
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Item
	for _, item := range s.items {
		if item.Digital || item.Consumable || item.ExportedToVault {
			continue
		}
		if !allowed[item.Category] && item.Price.LessThan(minPrice) {
			continue
		}
		out = append(out, item)
	}
	sortByDateDesc(out)
	return out, nil
}

// Search returns items matching the conjunction of all supplied filters.
func (s *ItemStore) Search(_ context.Context, filter domain.SearchFilter) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Item
	for _, item := range s.items {
		if filter.Date != nil && !item.PurchaseDate.Equal(*filter.Date) {
			continue
		}
		if filter.Amount != nil && !item.Price.Equal(*filter.Amount) {
			continue
		}
		if filter.From != nil && item.PurchaseDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && item.PurchaseDate.After(*filter.To) {
			continue
		}
		out = append(out, item)
	}
	sortByDateDesc(out)
	return out, nil
}

// Stats returns aggregate counts.
func (s *ItemStore) Stats(_ context.Context) (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{TotalSpent: decimal.Zero}
	orders := make(map[string]bool)
	for _, item := range s.items {
		stats.TotalItems++
		orders[item.OrderID] = true
		stats.TotalSpent = stats.TotalSpent.Add(
			item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if item.ExportedToVault {
			stats.Exported++
		}
		if item.Digital {
			stats.Digital++
		}
		if item.Consumable {
			stats.Consumable++
		}
	}
	stats.TotalOrders = len(orders)
	return &stats, nil
}

func sortByDateDesc(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PurchaseDate.After(items[j].PurchaseDate)
	})
}
