// Package cli is the cobra-based driving adapter. Each command file
// wires flags and output formatting around the core services; the
// services themselves never print.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/config/file"
	"github.com/mroethli/purchases-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
	"github.com/mroethli/purchases-cli/internal/core/services"
	"github.com/mroethli/purchases-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Wiring state. Populated lazily by ensureServices; tests inject their
// own implementations and skip the real wiring.
var (
	cfg           *domain.Config
	itemStore     driven.ItemStore
	importService driving.ImportService
	queryService  driving.QueryService

	// exportService is normally built per export run (the vault path
	// can come from a flag); tests may preset it.
	exportService driving.ExportService

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Track purchase history and export items to a document vault",
	Long: `Purchases imports vendor order-history exports into a local SQLite
database, classifies each line item, and exports the ones worth
tracking as asset notes into an Obsidian-style vault.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"print debug output to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig resolves configuration once per process.
func resolveConfig() (*domain.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	resolved, err := file.Resolve()
	if err != nil {
		return nil, err
	}
	cfg = resolved
	return cfg, nil
}

// ensureServices opens the store and wires the core services. The
// returned cleanup closes the store; it is a no-op when services were
// injected (tests).
func ensureServices() (func(), error) {
	if itemStore != nil {
		return func() {}, nil
	}

	conf, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(conf.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	itemStore = store.ItemStore()
	importService = services.NewImportService(itemStore)
	queryService = services.NewQueryService(itemStore)

	return func() {
		store.Close()
		itemStore = nil
		importService = nil
		queryService = nil
	}, nil
}

// printItems renders a short item listing shared by list and search.
func printItems(cmd *cobra.Command, items []domain.Item) {
	for _, item := range items {
		name := item.Name
		if r := []rune(name); len(r) > 60 {
			name = string(r[:60])
		}
		cmd.Printf("  [%s] %s\n", item.Category, name)
		cmd.Printf("    %s %s | %s | %s\n",
			item.Currency, item.Price.StringFixed(2),
			item.PurchaseDate.Format(domain.DateFormat), item.Vendor)
		cmd.Println()
	}
}
