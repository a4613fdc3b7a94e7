package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importSampleCSV = `order id,order url,order date,quantity,description,item url,price,ASIN,category
302-001,https://amazon.de/orders/302-001,2024-03-15,1,SUNLU PLA Filament 1.75mm,https://amazon.de/dp/B07X,€25.99,B07X,3D Printing Supplies
302-002,https://amazon.de/orders/302-002,2024-04-02,1,Sony WH-1000XM5 Headphones,https://amazon.de/dp/B09Y,€284.69,B09Y,Electronics
`

func writeImportSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte(importSampleCSV), 0600))
	return path
}

func TestImportCmd_Use(t *testing.T) {
	assert.Equal(t, "import <source>", importCmd.Use)
}

func TestImportCmd_Flags(t *testing.T) {
	fileFlag := importCmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)

	updateFlag := importCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "u", updateFlag.Shorthand)
	assert.Equal(t, "false", updateFlag.DefValue)
}

func TestImportCmd_RejectsUnknownSource(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"import", "ebay", "--file", "x.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
		importFile = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestImportCmd_RequiresFile(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"import", "amazon"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--file is required")
}

func TestImportCmd_ImportsAndPrintsSummary(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := writeImportSample(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"import", "amazon", "--file", path})
	defer func() {
		rootCmd.SetArgs(nil)
		importFile = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Total items:    2")
	assert.Contains(t, out, "New items:      2")
	assert.Contains(t, out, "By category:")
	assert.Contains(t, out, "3d-printing: 1")
	assert.Contains(t, out, "electronics: 1")
}

func TestImportCmd_SecondRunSkips(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := writeImportSample(t)

	run := func() string {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"import", "amazon", "--file", path})
		defer func() {
			rootCmd.SetArgs(nil)
			importFile = ""
		}()
		require.NoError(t, rootCmd.Execute())
		return buf.String()
	}

	run()
	out := run()

	assert.Contains(t, out, "New items:      0")
	assert.Contains(t, out, "Skipped:        2")
}
