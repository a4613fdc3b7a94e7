package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

var (
	importFile   string
	importUpdate bool
)

var importCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Import purchases from a vendor export",
	Long: `Imports an order-history export into the database. Rows are keyed on
(order id, vendor SKU, vendor), so re-running an import never creates
duplicates: existing rows are skipped, or updated with --update.

Currently the only supported source is "amazon".`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "path to the export file")
	importCmd.Flags().BoolVarP(&importUpdate, "update", "u", false,
		"update existing entries instead of skipping duplicates")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]
	if source != "amazon" {
		return fmt.Errorf("unknown source: %s", source)
	}
	if importFile == "" {
		return errors.New("--file is required for amazon import")
	}

	cleanup, err := ensureServices()
	if err != nil {
		return err
	}
	defer cleanup()

	mode := domain.ModeSkipDuplicates
	if importUpdate {
		mode = domain.ModeUpdateExisting
	}

	summary, err := importService.ImportAmazon(context.Background(), importFile, mode)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Println("Imported from Amazon CSV:")
	cmd.Printf("  Total items:    %d\n", summary.Total)
	cmd.Printf("  New items:      %d\n", summary.Inserted)
	cmd.Printf("  Updated:        %d\n", summary.Updated)
	cmd.Printf("  Skipped:        %d\n", summary.Skipped)
	cmd.Printf("  Digital:        %d\n", summary.Digital)
	cmd.Printf("  Consumable:     %d\n", summary.Consumable)

	if len(summary.ByCategory) > 0 {
		cmd.Println()
		cmd.Println("By category:")
		categories := make([]string, 0, len(summary.ByCategory))
		for cat := range summary.ByCategory {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			cmd.Printf("  %s: %d\n", cat, summary.ByCategory[cat])
		}
	}

	return nil
}
