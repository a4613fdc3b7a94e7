package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// Environment variables recognised on top of the config file.
const (
	EnvDBPath    = "PURCHASES_DB_PATH"
	EnvDataDir   = "PURCHASES_DATA_DIR"
	EnvConfigDir = "PURCHASES_CONFIG_DIR"
	EnvVaultPath = "VAULT_PATH"
)

// EnvVars lists the recognised variables in display order.
var EnvVars = []string{EnvDBPath, EnvDataDir, EnvConfigDir, EnvVaultPath}

// Config file keys.
const (
	keyDBPath    = "db_path"
	keyDataDir   = "data_dir"
	keyVaultPath = "vault_path"
)

// Resolve folds environment overrides, the TOML config file and
// defaults into one Config value object. Precedence per setting:
// environment variable, then config file, then default. The result is
// computed once and passed by reference into the pipeline's entry
// points; nothing downstream consults the environment again.
func Resolve() (*domain.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}

	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(home, ".purchases")
	}

	store, err := NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dataDir := firstNonEmpty(
		os.Getenv(EnvDataDir),
		store.GetString(keyDataDir),
		filepath.Join(home, ".purchases", "data"),
	)

	dbPath := firstNonEmpty(
		os.Getenv(EnvDBPath),
		store.GetString(keyDBPath),
		filepath.Join(dataDir, "purchases.db"),
	)

	vaultPath := firstNonEmpty(
		os.Getenv(EnvVaultPath),
		store.GetString(keyVaultPath),
	)

	overrides := make(map[string]string)
	for _, name := range EnvVars {
		if v := os.Getenv(name); v != "" {
			overrides[name] = v
		}
	}

	return &domain.Config{
		DataDir:      dataDir,
		ConfigDir:    configDir,
		DBPath:       dbPath,
		VaultPath:    vaultPath,
		EnvOverrides: overrides,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
