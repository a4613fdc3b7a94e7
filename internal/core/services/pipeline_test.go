package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mroethli/purchases-cli/internal/adapters/driven/vault"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
)

// TestPipeline_ImportUpdateExport walks the whole pipeline against the
// real SQLite store and a real vault directory: two imports sharing a
// natural key under update mode, then an export, then a second export
// that must find nothing left.
func TestPipeline_ImportUpdateExport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := sqlite.NewStore(filepath.Join(dir, "purchases.db"))
	require.NoError(t, err)
	defer store.Close()
	items := store.ItemStore()

	vaultRoot := filepath.Join(dir, "vault")
	importSvc := NewImportService(items)
	exportSvc := NewExportService(items, vault.NewWriter(vaultRoot))

	write := func(price string) string {
		csv := `order id,order url,order date,quantity,description,item url,price,subscribe & save,ASIN,category
302-001,https://amazon.de/orders/302-001,2024-03-15,1,Bosch Professional GSR 12V,https://amazon.de/dp/B07X,` + price + `,,B07X,DIY & Tools
`
		path := filepath.Join(t.TempDir(), "items.csv")
		require.NoError(t, os.WriteFile(path, []byte(csv), 0600))
		return path
	}

	// First import inserts.
	first, err := importSvc.ImportAmazon(ctx, write("€120.00"), domain.ModeUpdateExisting)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	// Second import with a different price updates the same row.
	second, err := importSvc.ImportAmazon(ctx, write("€99.50"), domain.ModeUpdateExisting)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Updated)
	assert.Equal(t, 0, second.Inserted)

	stats, err := items.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalItems)

	found, err := items.Search(ctx, domain.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "99.5", found[0].Price.String())

	// Export selects the tools item regardless of the threshold,
	// writes it once and flips the flag.
	summary, err := exportSvc.Export(ctx, driving.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)
	require.Len(t, summary.Files, 1)
	assert.FileExists(t, summary.Files[0])

	exported, err := items.Get(ctx, found[0].ID)
	require.NoError(t, err)
	assert.True(t, exported.ExportedToVault)

	// A second export run selects nothing further for the item.
	again, err := exportSvc.Export(ctx, driving.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Total)
	assert.Equal(t, 0, again.Written)
}
