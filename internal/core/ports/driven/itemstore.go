package driven

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// ItemStore persists purchased items behind a natural-key-unique schema.
// Backed by SQLite. Every mutation commits independently; there is no
// transaction spanning an import batch, so a crashed import leaves a
// committed prefix that a re-run folds into idempotently.
type ItemStore interface {
	// Upsert inserts or updates an item keyed on its natural key
	// (order id, vendor SKU, vendor).
	//
	// Under ModeUpdateExisting an existing row has its mutable
	// descriptive, classification and provenance fields updated in
	// place; the surrogate id, the exported flag and the digital/
	// consumable flags are preserved. Under ModeSkipDuplicates an
	// existing key leaves the row untouched.
	//
	// Returns the row's surrogate id (0 when skipped) and the outcome
	// tag, which callers use purely for reporting.
	Upsert(ctx context.Context, item domain.Item, mode domain.ImportMode) (int64, domain.UpsertOutcome, error)

	// Get retrieves an item by surrogate id.
	Get(ctx context.Context, id int64) (*domain.Item, error)

	// MarkExported sets the exported-to-vault flag for the row with the
	// given surrogate id. Idempotent.
	MarkExported(ctx context.Context, id int64) error

	// EligibleForExport returns every item that is not digital, not
	// consumable, not yet exported, and either in one of the given
	// categories or priced at or above minPrice. Ordered by purchase
	// date descending. A nil categories slice defaults to all tracked
	// categories except "other".
	EligibleForExport(ctx context.Context, minPrice decimal.Decimal, categories []string) ([]domain.Item, error)

	// Search returns items matching the conjunction of all supplied
	// filters, ordered by purchase date descending.
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Item, error)

	// Stats returns aggregate counts over the whole store.
	Stats(ctx context.Context) (*domain.Stats, error)
}
