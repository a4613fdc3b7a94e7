package driving

import (
	"context"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// ImportService ingests vendor order-history exports into the store.
type ImportService interface {
	// ImportAmazon parses the Amazon items CSV at path, classifies each
	// row and upserts it under the given mode. Malformed rows are
	// skipped by the parser, never aborting the batch; store errors are
	// fatal. Re-running the same import is idempotent.
	ImportAmazon(ctx context.Context, path string, mode domain.ImportMode) (*domain.ImportSummary, error)
}
