package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
	"github.com/mroethli/purchases-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultMinPrice is the threshold above which "other"-category items
// still qualify for export.
var DefaultMinPrice = decimal.NewFromInt(100)

// ExportService materializes eligible items as notes in the vault.
type ExportService struct {
	items  driven.ItemStore
	writer driven.NoteWriter
}

// NewExportService creates a new export service. writer is nil when no
// vault is configured; Export then fails up front while Pending keeps
// working.
func NewExportService(items driven.ItemStore, writer driven.NoteWriter) *ExportService {
	return &ExportService{items: items, writer: writer}
}

// Pending returns the items the next export would select.
func (s *ExportService) Pending(ctx context.Context, minPrice decimal.Decimal) ([]domain.Item, error) {
	return s.items.EligibleForExport(ctx, minPrice, nil)
}

// Export writes one note per eligible item and marks each successfully
// written item as exported.
//
// Write-then-mark is two steps without a transaction around them. If
// the process dies between them the item stays unexported, the next run
// re-selects it, and the already-existing file pushes the writer onto
// its collision-rename path: at-least-once delivery, never destructive.
func (s *ExportService) Export(ctx context.Context, opts driving.ExportOptions) (*domain.ExportSummary, error) {
	if s.writer == nil {
		return nil, domain.ErrVaultNotConfigured
	}

	minPrice := opts.MinPrice
	if minPrice.IsZero() {
		minPrice = DefaultMinPrice
	}

	items, err := s.items.EligibleForExport(ctx, minPrice, nil)
	if err != nil {
		return nil, err
	}

	summary := &domain.ExportSummary{Total: len(items)}

	logger.Section("export")
	for _, item := range items {
		path, err := s.writer.Write(ctx, item, opts.DryRun)
		if err != nil {
			// Per-item failure: count it, leave the exported flag
			// false so the next run retries, and carry on.
			logger.Warn("export: %s: %v", item.Name, err)
			summary.Failed++
			continue
		}

		if !opts.DryRun {
			if err := s.items.MarkExported(ctx, item.ID); err != nil {
				logger.Warn("export: marking %d exported: %v", item.ID, err)
				summary.Failed++
				continue
			}
		}

		summary.Written++
		summary.Files = append(summary.Files, path)
	}

	return summary, nil
}
