package services

import (
	"context"
	"fmt"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
	"github.com/mroethli/purchases-cli/internal/importers/amazon"
	"github.com/mroethli/purchases-cli/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService ingests vendor exports into the item store.
type ImportService struct {
	items driven.ItemStore
}

// NewImportService creates a new import service.
func NewImportService(items driven.ItemStore) *ImportService {
	return &ImportService{items: items}
}

// ImportAmazon parses the Amazon items CSV at path and upserts every
// valid row under the given mode. Each upsert commits independently;
// a failed run can simply be repeated because the natural key makes
// re-imports idempotent.
func (s *ImportService) ImportAmazon(
	ctx context.Context,
	path string,
	mode domain.ImportMode,
) (*domain.ImportSummary, error) {
	src, err := amazon.NewSource(path)
	if err != nil {
		return nil, err
	}

	summary := &domain.ImportSummary{ByCategory: make(map[string]int)}

	logger.Section("import")
	for item := range src.Items() {
		summary.Total++
		if item.Digital {
			summary.Digital++
		}
		if item.Consumable {
			summary.Consumable++
		}
		summary.ByCategory[item.Category]++

		_, outcome, err := s.items.Upsert(ctx, item, mode)
		if err != nil {
			return nil, fmt.Errorf("upserting %s/%s: %w", item.OrderID, item.VendorSKU, err)
		}
		summary.Count(outcome)
		logger.Debug("import: %s %s (%s)", outcome, item.Name, item.Category)
	}

	return summary, nil
}
