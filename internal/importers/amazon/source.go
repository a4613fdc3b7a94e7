// Package amazon parses the Amazon order-history CSV export into items.
//
// Parsing is deliberately forgiving: rows with a missing order id or
// description, a duplicated header line, or an unparsable date are
// skipped without aborting the batch, and malformed prices and
// quantities fall back to defaults. The single fatal input error is a
// missing file, surfaced by NewSource.
package amazon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/classify"
	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/logger"
)

// Vendor is the vendor name recorded on every imported item. Part of
// the natural key.
const Vendor = "amazon"

// currency is fixed: the export carries €-prefixed prices.
const currency = "EUR"

// Expected CSV columns. The export also carries columns we ignore
// (e.g. "subscribe & save"); lookup is header-keyed, not positional.
const (
	colOrderID     = "order id"
	colOrderURL    = "order url"
	colOrderDate   = "order date"
	colQuantity    = "quantity"
	colDescription = "description"
	colItemURL     = "item url"
	colPrice       = "price"
	colASIN        = "ASIN"
	colCategory    = "category"
)

// currencySymbols strips the currency symbol and any whitespace from a
// price string before decimal parsing.
var currencySymbols = regexp.MustCompile(`[€$£\s]`)

// Source reads items from an Amazon items CSV export.
type Source struct {
	path string
}

// NewSource returns a source over the CSV file at path.
// The file must exist; everything else is validated row by row.
func NewSource(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening amazon export: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening amazon export: %s is a directory", path)
	}
	return &Source{path: path}, nil
}

// Items returns a lazy sequence of parsed items. The sequence is
// restartable: every invocation reopens the file and replays the same
// drafts, holding no state across calls. Rows that fail validation are
// skipped.
func (s *Source) Items() iter.Seq[domain.Item] {
	return func(yield func(domain.Item) bool) {
		f, err := os.Open(s.path)
		if err != nil {
			logger.Warn("amazon: reopening export failed: %v", err)
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1

		columns, err := readHeader(r)
		if err != nil {
			logger.Warn("amazon: reading header failed: %v", err)
			return
		}

		for {
			record, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				logger.Debug("amazon: skipping malformed csv record: %v", err)
				continue
			}

			item, ok := parseRow(columns, record)
			if !ok {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// readHeader reads the first record and maps column names to indexes.
// A UTF-8 BOM on the first column name is tolerated, matching the
// encoding the export is written with.
func readHeader(r *csv.Reader) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	return columns, nil
}

// parseRow turns one CSV record into an item draft. Returns false for
// rows that must be skipped.
func parseRow(columns map[string]int, record []string) (domain.Item, bool) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	orderID := field(colOrderID)
	if orderID == "" || orderID == colOrderID {
		// Empty row or a duplicated header line inside the file.
		return domain.Item{}, false
	}

	name := field(colDescription)
	if name == "" {
		return domain.Item{}, false
	}

	purchaseDate, err := time.Parse(domain.DateFormat, field(colOrderDate))
	if err != nil {
		logger.Debug("amazon: skipping row %s: bad date %q", orderID, field(colOrderDate))
		return domain.Item{}, false
	}

	vendorCategory := field(colCategory)
	itemURL := field(colItemURL)
	c := classify.Classify(name, itemURL, vendorCategory)

	return domain.Item{
		OrderID:         orderID,
		Vendor:          Vendor,
		Name:            name,
		Price:           parsePrice(field(colPrice)),
		Currency:        currency,
		Quantity:        parseQuantity(field(colQuantity)),
		PurchaseDate:    purchaseDate,
		Category:        c.Category,
		VendorCategory:  vendorCategory,
		VendorSKU:       field(colASIN),
		OrderURL:        field(colOrderURL),
		ItemURL:         itemURL,
		Digital:         c.Digital,
		Consumable:      c.Consumable,
		ExportedToVault: false,
	}, true
}

// parsePrice parses a price string like "€123.45" or "€1,284.69" into
// an exact decimal. The currency symbol and whitespace are stripped and
// thousands-separator commas removed. Any parse failure yields zero
// rather than failing the row; the bad value is only visible at debug
// level.
func parsePrice(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	cleaned := currencySymbols.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		logger.Debug("amazon: unparsable price %q defaulted to 0", s)
		return decimal.Zero
	}
	return d
}

// parseQuantity parses the quantity field, defaulting to 1 on absence
// or failure.
func parseQuantity(s string) int {
	if s == "" {
		return 1
	}
	q, err := strconv.Atoi(s)
	if err != nil || q < 1 {
		return 1
	}
	return q
}
