package driving

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// ExportOptions parameterize one export run.
type ExportOptions struct {
	// MinPrice is the threshold above which "other"-category items
	// still qualify for export.
	MinPrice decimal.Decimal

	// DryRun computes target paths without writing any file or
	// mutating the store.
	DryRun bool
}

// ExportService materializes eligible items as notes in the vault.
type ExportService interface {
	// Export selects eligible items, writes one note per item and
	// marks each successfully written item as exported. Write-then-mark
	// is not atomic: a crash between the two leaves the item
	// unexported, and the next run re-selects it and lands on the
	// collision-rename path. Delivery is therefore at-least-once with
	// non-destructive retries.
	//
	// Fails with domain.ErrVaultNotConfigured before processing any
	// item when no vault path is available.
	Export(ctx context.Context, opts ExportOptions) (*domain.ExportSummary, error)

	// Pending returns the items the next non-dry-run export would
	// select, for previewing.
	Pending(ctx context.Context, minPrice decimal.Decimal) ([]domain.Item, error)
}
