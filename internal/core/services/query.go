package services

import (
	"context"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService exposes read-only views over the store.
type QueryService struct {
	items driven.ItemStore
}

// NewQueryService creates a new query service.
func NewQueryService(items driven.ItemStore) *QueryService {
	return &QueryService{items: items}
}

// Stats returns a snapshot of aggregate counts.
func (s *QueryService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.items.Stats(ctx)
}

// Search returns items matching the conjunction of all supplied
// filters, ordered by purchase date descending.
func (s *QueryService) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Item, error) {
	return s.items.Search(ctx, filter)
}
