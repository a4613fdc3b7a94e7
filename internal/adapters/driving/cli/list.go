package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/core/services"
)

var listMinPrice float64

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items that would be exported to the vault",
	Long: `Previews the next export run: every tracked-category item plus any
item at or above the price threshold, excluding items already
exported.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().Float64Var(&listMinPrice, "min-price", 100,
		"price threshold for items outside the tracked categories")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cleanup, err := ensureServices()
	if err != nil {
		return err
	}
	defer cleanup()

	svc := exportService
	if svc == nil {
		// Pending never touches the vault, so no writer is needed.
		svc = services.NewExportService(itemStore, nil)
	}

	items, err := svc.Pending(context.Background(), decimal.NewFromFloat(listMinPrice))
	if err != nil {
		return fmt.Errorf("listing pending items: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No items pending export.")
		return nil
	}

	cmd.Printf("%d item(s) pending export:\n\n", len(items))
	printItems(cmd, items)
	return nil
}
