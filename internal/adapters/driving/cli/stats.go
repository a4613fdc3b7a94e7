package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the store",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cleanup, err := ensureServices()
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := queryService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	cmd.Println("Purchase statistics:")
	cmd.Printf("  Total items:    %d\n", stats.TotalItems)
	cmd.Printf("  Total orders:   %d\n", stats.TotalOrders)
	cmd.Printf("  Total spent:    %s\n", stats.TotalSpent.StringFixed(2))
	cmd.Printf("  Exported:       %d\n", stats.Exported)
	cmd.Printf("  Digital:        %d\n", stats.Digital)
	cmd.Printf("  Consumable:     %d\n", stats.Consumable)
	return nil
}
