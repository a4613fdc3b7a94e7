package domain

// Config is the resolved configuration value object.
// It is constructed once by the CLI wiring and passed by reference into
// the pipeline's entry points; no implicit process-wide state.
type Config struct {
	// DataDir is the directory holding data files.
	DataDir string

	// ConfigDir is the directory holding the config file.
	ConfigDir string

	// DBPath is the SQLite database file location.
	DBPath string

	// VaultPath is the vault root, or empty when not configured.
	VaultPath string

	// EnvOverrides maps the environment variables that were set to the
	// values they carried, for display by the config command.
	EnvOverrides map[string]string
}
