package domain

import "github.com/shopspring/decimal"

// ImportSummary aggregates the result of one import run.
type ImportSummary struct {
	// Total is the number of rows that produced a valid item.
	Total int

	// Inserted, Updated and Skipped count upsert outcomes.
	Inserted int
	Updated  int
	Skipped  int

	// Digital and Consumable count items flagged at import time.
	Digital    int
	Consumable int

	// ByCategory breaks Total down per assigned category.
	ByCategory map[string]int
}

// Count records one upsert outcome.
func (s *ImportSummary) Count(outcome UpsertOutcome) {
	switch outcome {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeUpdated:
		s.Updated++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// ExportSummary aggregates the result of one export run.
type ExportSummary struct {
	// Total is the number of items selected for export.
	Total int

	// Written counts items whose note was written successfully.
	Written int

	// Failed counts items whose write failed. Failed items keep
	// ExportedToVault = false and are retried on the next run.
	Failed int

	// Files lists the paths of written (or, in dry-run, planned) notes.
	Files []string
}

// Stats is a snapshot of aggregate counts over the whole store.
type Stats struct {
	TotalItems  int
	TotalOrders int

	// TotalSpent is the sum of price x quantity across all items.
	TotalSpent decimal.Decimal

	Exported   int
	Digital    int
	Consumable int
}
