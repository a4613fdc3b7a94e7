package vault

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// maxStemLength bounds the filename stem so notes stay readable in the
// vault's file list. Longer names are cut to 77 characters plus an
// ellipsis marker.
const maxStemLength = 80

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
)

// noteFrontMatter is the metadata block prefixed to every asset note.
// Field order matters: it is the order the keys appear in the file.
type noteFrontMatter struct {
	Type          string `yaml:"type"`
	Name          string `yaml:"name"`
	Category      string `yaml:"category"`
	PurchaseDate  string `yaml:"purchase_date"`
	Price         string `yaml:"price"`
	Currency      string `yaml:"currency"`
	Vendor        string `yaml:"vendor"`
	VendorSKU     string `yaml:"vendor_sku"`
	OrderID       string `yaml:"order_id"`
	WarrantyUntil string `yaml:"warranty_until"`
	Status        string `yaml:"status"`
	ProductURL    string `yaml:"product_url"`
}

// Render produces the markdown document for an asset note: a YAML
// front-matter block followed by a heading, an empty notes section and
// links back to the product and order pages.
func Render(item domain.Item) (string, error) {
	fm := noteFrontMatter{
		Type:          "asset",
		Name:          item.Name,
		Category:      item.Category,
		PurchaseDate:  item.PurchaseDate.Format(domain.DateFormat),
		Price:         item.Price.StringFixed(2),
		Currency:      item.Currency,
		Vendor:        item.Vendor,
		VendorSKU:     item.VendorSKU,
		OrderID:       item.OrderID,
		WarrantyUntil: "",
		Status:        "owned",
		ProductURL:    item.ItemURL,
	}

	meta, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshalling front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "\n# %s\n", item.Name)
	b.WriteString("\n## Notes\n")
	b.WriteString("\n## Links\n")
	fmt.Fprintf(&b, "- [Product page](%s)\n", item.ItemURL)
	fmt.Fprintf(&b, "- [Order](%s)\n", item.OrderURL)

	return b.String(), nil
}

// SanitizeFilename converts an item name into a valid filename stem:
// characters illegal on common filesystems are removed, whitespace runs
// collapse to a single space, and overlong names are truncated with an
// ellipsis marker.
func SanitizeFilename(name string) string {
	sanitized := illegalFilenameChars.ReplaceAllString(name, "")
	sanitized = whitespaceRuns.ReplaceAllString(sanitized, " ")
	if runes := []rune(sanitized); len(runes) > maxStemLength {
		sanitized = string(runes[:maxStemLength-3]) + "..."
	}
	return strings.TrimSpace(sanitized)
}
