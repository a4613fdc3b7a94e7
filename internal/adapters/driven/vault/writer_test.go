package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

func testItem() domain.Item {
	return domain.Item{
		ID:             7,
		OrderID:        "302-001",
		Vendor:         "amazon",
		Name:           "SUNLU PLA Filament 1.75mm Black",
		Price:          decimal.RequireFromString("25.9"),
		Currency:       "EUR",
		Quantity:       1,
		PurchaseDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Category:       "3d-printing",
		VendorCategory: "3D Printing Supplies",
		VendorSKU:      "B07X",
		OrderURL:       "https://amazon.de/orders/302-001",
		ItemURL:        "https://amazon.de/dp/B07X",
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "illegal characters removed and whitespace collapsed",
			in:   `USB <Cable> 2m: "fast"  / cheap \ great | really? *new*`,
			want: "USB Cable 2m fast cheap great really new",
		},
		{
			name: "plain name untouched",
			in:   "Ceramic Chef Knife",
			want: "Ceramic Chef Knife",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  padded name  ",
			want: "padded name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := SanitizeFilename(long)

	assert.Equal(t, strings.Repeat("x", 77)+"...", got)
	assert.Len(t, got, 80)
}

func TestRender_FrontMatter(t *testing.T) {
	content, err := Render(testItem())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "type: asset")
	assert.Contains(t, content, "name: SUNLU PLA Filament 1.75mm Black")
	assert.Contains(t, content, "category: 3d-printing")
	assert.Contains(t, content, "purchase_date: \"2024-03-15\"")
	assert.Contains(t, content, "price: \"25.90\"")
	assert.Contains(t, content, "currency: EUR")
	assert.Contains(t, content, "vendor: amazon")
	assert.Contains(t, content, "vendor_sku: B07X")
	assert.Contains(t, content, "order_id: 302-001")
	assert.Contains(t, content, "warranty_until: \"\"")
	assert.Contains(t, content, "status: owned")
	assert.Contains(t, content, "product_url: https://amazon.de/dp/B07X")
}

func TestRender_Body(t *testing.T) {
	content, err := Render(testItem())
	require.NoError(t, err)

	assert.Contains(t, content, "# SUNLU PLA Filament 1.75mm Black")
	assert.Contains(t, content, "## Notes")
	assert.Contains(t, content, "## Links")
	assert.Contains(t, content, "[Product page](https://amazon.de/dp/B07X)")
	assert.Contains(t, content, "[Order](https://amazon.de/orders/302-001)")
}

func TestWriter_Write(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	path, err := w.Write(context.Background(), testItem(), false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "50-Databases", "Assets",
		"SUNLU PLA Filament 1.75mm Black.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: asset")
}

func TestWriter_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	path, err := w.Write(context.Background(), testItem(), true)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	// Neither the note nor the assets folder exist afterwards.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "50-Databases"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_CollisionAppendsSKU(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	ctx := context.Background()

	first, err := w.Write(ctx, testItem(), false)
	require.NoError(t, err)

	second, err := w.Write(ctx, testItem(), false)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(root, "50-Databases", "Assets",
		"SUNLU PLA Filament 1.75mm Black (B07X).md"), second)

	// Both files survive; the retry never destroys the earlier note.
	_, err = os.Stat(first)
	assert.NoError(t, err)
	_, err = os.Stat(second)
	assert.NoError(t, err)
}
