package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd_Use(t *testing.T) {
	assert.Equal(t, "stats", statsCmd.Use)
}

func TestStatsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	seedItem(t, exportableItem("302-001", "B07X", "Bosch GSR 12V Drill", 89.99))
	seedItem(t, exportableItem("302-001", "B01A", "Drill Bit Set", 10.01))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Total items:    2")
	assert.Contains(t, out, "Total orders:   1")
	assert.Contains(t, out, "Total spent:    100.00")
}
