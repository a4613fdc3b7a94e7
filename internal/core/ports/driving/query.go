package driving

import (
	"context"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// QueryService exposes read-only views over the store.
type QueryService interface {
	// Stats returns a snapshot of aggregate counts.
	Stats(ctx context.Context) (*domain.Stats, error)

	// Search returns items matching the conjunction of all supplied
	// filters, ordered by purchase date descending.
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Item, error)
}
