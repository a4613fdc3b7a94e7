package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/services"
)

var migrateForce bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <source>",
	Short: "Copy an existing database file into the configured location",
	Long: `Copies a database file from another location into the configured
database path, then applies any pending schema migrations. Refuses to
overwrite an existing database unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateForce, "force", "f", false,
		"overwrite the destination database if it exists")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	source := args[0]
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("source database not found: %s", source)
	}

	conf, err := resolveConfig()
	if err != nil {
		return err
	}

	dest := conf.DBPath
	if _, err := os.Stat(dest); err == nil && !migrateForce {
		return fmt.Errorf("%w: %s (use --force to overwrite)", domain.ErrDatabaseExists, dest)
	}

	if err := copyFile(source, dest); err != nil {
		return fmt.Errorf("copying database: %w", err)
	}
	cmd.Printf("Migrated database from %s to %s\n", source, dest)

	// Opening the store applies any schema migrations the copy is
	// missing.
	store, err := sqlite.NewStore(dest)
	if err != nil {
		return fmt.Errorf("opening migrated store: %w", err)
	}
	defer store.Close()

	stats, err := services.NewQueryService(store.ItemStore()).Stats(context.Background())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	cmd.Println()
	cmd.Println("Database contains:")
	cmd.Printf("  %d items in %d orders\n", stats.TotalItems, stats.TotalOrders)
	return nil
}

func copyFile(source, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
