package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

var (
	searchDate   string
	searchAmount string
	searchFrom   string
	searchTo     string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search items by purchase date and amount",
	Long: `Finds items matching all supplied filters. Dates use YYYY-MM-DD;
--amount matches the exact item price.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchDate, "date", "d", "", "exact purchase date (YYYY-MM-DD)")
	searchCmd.Flags().StringVarP(&searchAmount, "amount", "a", "", "exact item price")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "earliest purchase date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "latest purchase date (YYYY-MM-DD)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	filter, err := buildSearchFilter()
	if err != nil {
		return err
	}
	if filter.Empty() {
		return fmt.Errorf("%w: at least one of --date, --amount, --from, --to is required",
			domain.ErrInvalidInput)
	}

	cleanup, err := ensureServices()
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := queryService.Search(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No matching items.")
		return nil
	}

	cmd.Printf("%d matching item(s):\n\n", len(items))
	printItems(cmd, items)
	return nil
}

func buildSearchFilter() (domain.SearchFilter, error) {
	var filter domain.SearchFilter

	parseDate := func(flag, value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s must be YYYY-MM-DD, got %q",
				domain.ErrInvalidInput, flag, value)
		}
		return &t, nil
	}

	var err error
	if filter.Date, err = parseDate("date", searchDate); err != nil {
		return filter, err
	}
	if filter.From, err = parseDate("from", searchFrom); err != nil {
		return filter, err
	}
	if filter.To, err = parseDate("to", searchTo); err != nil {
		return filter, err
	}

	if searchAmount != "" {
		amount, err := decimal.NewFromString(searchAmount)
		if err != nil {
			return filter, fmt.Errorf("%w: --amount must be a number, got %q",
				domain.ErrInvalidInput, searchAmount)
		}
		filter.Amount = &amount
	}

	return filter, nil
}
