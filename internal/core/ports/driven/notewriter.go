package driven

import (
	"context"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// NoteWriter materializes items as individual notes in the vault.
type NoteWriter interface {
	// Write renders the item and writes it under the vault's assets
	// folder, returning the path of the created file. When a file at
	// the derived path already exists the name is re-derived once with
	// the item's vendor SKU appended, so a retried export never
	// overwrites an earlier note.
	//
	// In dry-run mode the target path is computed and returned without
	// creating directories or writing anything.
	Write(ctx context.Context, item domain.Item, dryRun bool) (string, error)
}
