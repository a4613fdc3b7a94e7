package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search", searchCmd.Use)
}

func TestSearchCmd_Flags(t *testing.T) {
	date := searchCmd.Flags().Lookup("date")
	require.NotNil(t, date)
	assert.Equal(t, "d", date.Shorthand)

	amount := searchCmd.Flags().Lookup("amount")
	require.NotNil(t, amount)
	assert.Equal(t, "a", amount.Shorthand)

	require.NotNil(t, searchCmd.Flags().Lookup("from"))
	require.NotNil(t, searchCmd.Flags().Lookup("to"))
}

func TestSearchCmd_RequiresAFilter(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of")
}

func TestSearchCmd_RejectsBadDate(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--date", "15.03.2024"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchDate = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestSearchCmd_RejectsBadAmount(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "--amount", "abc"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchAmount = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestSearchCmd_FindsByDate(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	seedItem(t, exportableItem("302-001", "B07X", "Bosch GSR 12V Drill", 89.99))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-d", "2024-03-15"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchDate = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "1 matching item(s)")
	assert.Contains(t, out, "Bosch GSR 12V Drill")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	seedItem(t, exportableItem("302-001", "B07X", "Bosch GSR 12V Drill", 89.99))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-a", "1.23"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchAmount = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No matching items.")
}
