package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mroethli/purchases-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Shows where the database, data directory and vault resolve to, and
which environment overrides are active. Never creates any file.`,
	RunE: runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Long: `Writes a key into the config file. Known keys are db_path, data_dir
and vault_path.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	conf, err := resolveConfig()
	if err != nil {
		return err
	}

	cmd.Println("Purchases configuration:")
	cmd.Printf("  Database:     %s\n", conf.DBPath)
	cmd.Printf("                %s\n", existence(conf.DBPath, "(exists)", "(not created yet)"))
	cmd.Printf("  Data dir:     %s\n", conf.DataDir)
	cmd.Printf("  Config dir:   %s\n", conf.ConfigDir)

	if conf.VaultPath != "" {
		cmd.Printf("  Vault:        %s\n", conf.VaultPath)
		cmd.Printf("                %s\n", existence(conf.VaultPath, "(exists)", "(not found)"))
	} else {
		cmd.Println("  Vault:        (not configured)")
	}

	if len(conf.EnvOverrides) > 0 {
		cmd.Println()
		cmd.Println("Environment overrides:")
		for _, key := range file.EnvVars {
			if value, ok := conf.EnvOverrides[key]; ok {
				cmd.Printf("  %s=%s\n", key, value)
			}
		}
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	conf, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := file.NewConfigStore(conf.ConfigDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	cmd.Printf("Set %s in %s\n", key, store.Path())
	return nil
}

// existence picks a label based on whether path exists on disk.
func existence(path, yes, no string) string {
	if _, err := os.Stat(path); err == nil {
		return yes
	}
	return no
}
