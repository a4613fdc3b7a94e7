// Package vault materializes items as markdown asset notes in an
// external document vault. The vault is just a directory tree; notes
// land in a fixed assets subfolder with YAML front matter the vault's
// tooling can index.
package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
	"github.com/mroethli/purchases-cli/internal/logger"
)

// AssetsFolder is the fixed subfolder under the vault root that holds
// asset notes.
const AssetsFolder = "50-Databases/Assets"

// Ensure Writer implements the interface.
var _ driven.NoteWriter = (*Writer)(nil)

// Writer writes asset notes under a vault root.
type Writer struct {
	root string
}

// NewWriter creates a writer for the given vault root.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Write renders the item and writes it into the vault's assets folder,
// returning the path of the created file.
//
// If a file at the derived path already exists, the name is re-derived
// once with the vendor SKU appended in parentheses. The check is not
// recursive: a second collision overwrites, which for identical items
// only re-renders the same content.
//
// In dry-run mode the target path is computed and returned without
// creating the directory or writing anything.
func (w *Writer) Write(_ context.Context, item domain.Item, dryRun bool) (string, error) {
	assetsDir := filepath.Join(w.root, filepath.FromSlash(AssetsFolder))
	path := filepath.Join(assetsDir, SanitizeFilename(item.Name)+".md")

	if dryRun {
		return path, nil
	}

	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return "", fmt.Errorf("creating assets folder: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		renamed := filepath.Join(assetsDir,
			fmt.Sprintf("%s (%s).md", SanitizeFilename(item.Name), item.VendorSKU))
		logger.Debug("vault: %s exists, writing %s instead", path, renamed)
		path = renamed
	}

	content, err := Render(item)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	return path, nil
}
