package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "purchases", rootCmd.Use)
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "V", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{
		"import", "list", "export", "search", "stats",
		"config", "migrate", "version",
	} {
		assert.True(t, names[want], "command %q should be registered", want)
	}
}
