package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/vault"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driving"
	"github.com/mroethli/purchases-cli/internal/core/services"
)

var (
	exportMinPrice float64
	exportVault    string
	exportDryRun   bool
	exportYes      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export eligible items as notes into the vault",
	Long: `Writes one markdown note per eligible item into the vault's assets
folder and marks each written item as exported. Items that fail to
write stay pending and are retried on the next run.

The vault path comes from --vault, or from the configured vault_path.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Float64Var(&exportMinPrice, "min-price", 100,
		"price threshold for items outside the tracked categories")
	exportCmd.Flags().StringVarP(&exportVault, "vault", "v", "", "path to the vault root")
	exportCmd.Flags().BoolVarP(&exportDryRun, "dry-run", "n", false,
		"show what would be exported without writing anything")
	exportCmd.Flags().BoolVarP(&exportYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cleanup, err := ensureServices()
	if err != nil {
		return err
	}
	defer cleanup()

	svc := exportService
	if svc == nil {
		built, err := buildExportService()
		if err != nil {
			return err
		}
		svc = built
	}

	minPrice := decimal.NewFromFloat(exportMinPrice)

	if !exportDryRun && !exportYes {
		pending, err := svc.Pending(context.Background(), minPrice)
		if err != nil {
			return fmt.Errorf("listing pending items: %w", err)
		}
		if len(pending) == 0 {
			cmd.Println("No items pending export.")
			return nil
		}
		if !confirm(cmd, fmt.Sprintf("Export %d item(s) to the vault?", len(pending))) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	summary, err := svc.Export(context.Background(), driving.ExportOptions{
		MinPrice: minPrice,
		DryRun:   exportDryRun,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if exportDryRun {
		cmd.Printf("Dry run: %d item(s) would be exported:\n", summary.Total)
		for _, path := range summary.Files {
			cmd.Printf("  %s\n", path)
		}
		return nil
	}

	cmd.Printf("Exported %d of %d item(s).\n", summary.Written, summary.Total)
	if summary.Failed > 0 {
		cmd.Printf("%d item(s) failed and will be retried on the next run.\n", summary.Failed)
	}
	return nil
}

// buildExportService resolves the vault path (flag over config) and
// wires a writer-backed export service.
func buildExportService() (driving.ExportService, error) {
	vaultPath := exportVault
	if vaultPath == "" {
		conf, err := resolveConfig()
		if err != nil {
			return nil, err
		}
		vaultPath = conf.VaultPath
	}
	if vaultPath == "" {
		return nil, domain.ErrVaultNotConfigured
	}
	return services.NewExportService(itemStore, vault.NewWriter(vaultPath)), nil
}

// confirm asks the user to proceed. Non-interactive runs proceed
// without prompting.
func confirm(cmd *cobra.Command, prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}
	cmd.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
