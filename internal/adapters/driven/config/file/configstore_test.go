package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("vault_path", "/vaults/main"))
	assert.Equal(t, "/vaults/main", store.GetString("vault_path"))

	// A fresh store reads the persisted value back.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/vaults/main", reopened.GetString("vault_path"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("anything"))
}

func TestConfigStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("db_path", "/tmp/p.db"))

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)
}

func TestResolve_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvVaultPath, "")

	cfg, err := Resolve()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".purchases"), cfg.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".purchases", "data"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".purchases", "data", "purchases.db"), cfg.DBPath)
	assert.Empty(t, cfg.VaultPath)
	assert.Empty(t, cfg.EnvOverrides)
}

func TestResolve_EnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDBPath, "/elsewhere/db.sqlite")
	t.Setenv(EnvVaultPath, "/vaults/main")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigDir, "")

	cfg, err := Resolve()
	require.NoError(t, err)

	assert.Equal(t, "/elsewhere/db.sqlite", cfg.DBPath)
	assert.Equal(t, "/vaults/main", cfg.VaultPath)
	assert.Equal(t, map[string]string{
		EnvDBPath:    "/elsewhere/db.sqlite",
		EnvVaultPath: "/vaults/main",
	}, cfg.EnvOverrides)
}

func TestResolve_ConfigFileBeatsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvVaultPath, "")

	seed, err := NewConfigStore(filepath.Join(home, ".purchases"))
	require.NoError(t, err)
	require.NoError(t, seed.Set("vault_path", "/vaults/from-file"))

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/vaults/from-file", cfg.VaultPath)
}
