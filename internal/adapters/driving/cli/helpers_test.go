package cli

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/storage/memory"
	"github.com/mroethli/purchases-cli/internal/adapters/driven/vault"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/services"
)

// setupTestServices wires the package-level services against an
// in-memory store so commands run without touching disk or config.
// The returned cleanup restores the uninitialized state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewItemStore()
	itemStore = store
	importService = services.NewImportService(store)
	queryService = services.NewQueryService(store)
	exportService = services.NewExportService(store, vault.NewWriter(t.TempDir()))

	return func() {
		itemStore = nil
		importService = nil
		queryService = nil
		exportService = nil
		cfg = nil
	}
}

// seedItem inserts one item into the injected store.
func seedItem(t *testing.T, item domain.Item) {
	t.Helper()
	_, _, err := itemStore.Upsert(context.Background(), item, domain.ModeSkipDuplicates)
	require.NoError(t, err)
}

func exportableItem(orderID, sku, name string, price float64) domain.Item {
	return domain.Item{
		OrderID:      orderID,
		Vendor:       "amazon",
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		Currency:     "EUR",
		Quantity:     1,
		PurchaseDate: mustDate("2024-03-15"),
		Category:     "tools",
		VendorSKU:    sku,
	}
}

func mustDate(s string) (t time.Time) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}
