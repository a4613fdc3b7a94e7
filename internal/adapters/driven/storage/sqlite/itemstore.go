package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mroethli/purchases-cli/internal/core/domain"
	"github.com/mroethli/purchases-cli/internal/core/ports/driven"
)

// itemStore implements driven.ItemStore.
type itemStore struct {
	store *Store
}

var _ driven.ItemStore = (*itemStore)(nil)

// itemColumns is the scan order shared by all item queries.
const itemColumns = `id, order_id, vendor, name, price, currency, quantity,
	purchase_date, category, vendor_category, vendor_sku,
	order_url, item_url, is_digital, is_consumable, exported_to_vault`

// Upsert inserts or updates an item keyed on its natural key.
func (s *itemStore) Upsert(
	ctx context.Context,
	item domain.Item,
	mode domain.ImportMode,
) (int64, domain.UpsertOutcome, error) {
	if item.OrderID == "" || item.Vendor == "" {
		return 0, "", domain.ErrInvalidInput
	}

	if mode == domain.ModeUpdateExisting {
		var existingID int64
		err := s.store.db.QueryRowContext(ctx, `
			SELECT id FROM items WHERE order_id = ? AND vendor_sku = ? AND vendor = ?
		`, item.OrderID, item.VendorSKU, item.Vendor).Scan(&existingID)
		switch {
		case err == sql.ErrNoRows:
			// Fall through to insert.
		case err != nil:
			return 0, "", fmt.Errorf("looking up item: %w", err)
		default:
			// Update mutable fields in place. The surrogate id, the
			// exported flag and the digital/consumable flags are
			// deliberately left untouched.
			_, err = s.store.db.ExecContext(ctx, `
				UPDATE items SET
					name = ?, price = ?, currency = ?, quantity = ?,
					purchase_date = ?, category = ?, vendor_category = ?,
					order_url = ?, item_url = ?
				WHERE id = ?
			`, item.Name, item.Price.String(), item.Currency, item.Quantity,
				item.PurchaseDate.Format(domain.DateFormat), item.Category,
				item.VendorCategory, item.OrderURL, item.ItemURL, existingID)
			if err != nil {
				return 0, "", fmt.Errorf("updating item: %w", err)
			}
			return existingID, domain.OutcomeUpdated, nil
		}
	}

	// Insert new, or silently skip an existing natural key.
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO items (
			order_id, vendor, name, price, currency, quantity,
			purchase_date, category, vendor_category, vendor_sku,
			order_url, item_url, is_digital, is_consumable
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_id, vendor_sku, vendor) DO NOTHING
	`, item.OrderID, item.Vendor, item.Name, item.Price.String(), item.Currency,
		item.Quantity, item.PurchaseDate.Format(domain.DateFormat),
		item.Category, item.VendorCategory, item.VendorSKU,
		item.OrderURL, item.ItemURL,
		boolToInt(item.Digital), boolToInt(item.Consumable))
	if err != nil {
		return 0, "", fmt.Errorf("inserting item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, "", fmt.Errorf("checking insert result: %w", err)
	}
	if affected == 0 {
		return 0, domain.OutcomeSkipped, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, "", fmt.Errorf("reading inserted id: %w", err)
	}
	return id, domain.OutcomeInserted, nil
}

// Get retrieves an item by surrogate id.
func (s *itemStore) Get(ctx context.Context, id int64) (*domain.Item, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM items WHERE id = ?
	`, id)

	return scanItemRow(row)
}

// MarkExported sets the exported-to-vault flag. Idempotent.
func (s *itemStore) MarkExported(ctx context.Context, id int64) error {
	_, err := s.store.db.ExecContext(ctx,
		"UPDATE items SET exported_to_vault = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking item exported: %w", err)
	}
	return nil
}

// EligibleForExport returns the items the next export would write,
// newest purchases first.
func (s *itemStore) EligibleForExport(
	ctx context.Context,
	minPrice decimal.Decimal,
	categories []string,
) ([]domain.Item, error) {
	if categories == nil {
		categories = domain.ExportableCategories()
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(categories)), ",")
	args := make([]any, 0, len(categories)+1)
	for _, c := range categories {
		args = append(args, c)
	}
	args = append(args, minPrice.InexactFloat64())

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE is_digital = 0
		  AND is_consumable = 0
		  AND exported_to_vault = 0
		  AND (category IN (`+placeholders+`) OR CAST(price AS REAL) >= ?)
		ORDER BY purchase_date DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying eligible items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Search returns items matching the conjunction of all supplied
// filters, newest purchases first.
func (s *itemStore) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Item, error) {
	where := []string{"1 = 1"}
	var args []any

	if filter.Date != nil {
		where = append(where, "purchase_date = ?")
		args = append(args, filter.Date.Format(domain.DateFormat))
	}
	if filter.Amount != nil {
		// Prices are stored in canonical decimal text, so exact-amount
		// equality holds as long as both sides are canonicalized.
		where = append(where, "price = ?")
		args = append(args, filter.Amount.String())
	}
	if filter.From != nil {
		where = append(where, "purchase_date >= ?")
		args = append(args, filter.From.Format(domain.DateFormat))
	}
	if filter.To != nil {
		where = append(where, "purchase_date <= ?")
		args = append(args, filter.To.Format(domain.DateFormat))
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY purchase_date DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Stats returns aggregate counts over the whole store.
func (s *itemStore) Stats(ctx context.Context) (*domain.Stats, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT order_id),
			COALESCE(SUM(CAST(price AS REAL) * quantity), 0),
			COUNT(CASE WHEN exported_to_vault = 1 THEN 1 END),
			COUNT(CASE WHEN is_digital = 1 THEN 1 END),
			COUNT(CASE WHEN is_consumable = 1 THEN 1 END)
		FROM items
	`)

	var stats domain.Stats
	var totalSpent float64
	if err := row.Scan(&stats.TotalItems, &stats.TotalOrders, &totalSpent,
		&stats.Exported, &stats.Digital, &stats.Consumable); err != nil {
		return nil, fmt.Errorf("scanning stats: %w", err)
	}

	// The spend total is a display aggregate; rounding the REAL sum to
	// cents is enough here, per-item prices stay exact.
	stats.TotalSpent = decimal.NewFromFloat(totalSpent).Round(2)
	return &stats, nil
}

// ==================== Helper Functions ====================

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem scans one item in itemColumns order.
func scanItem(sc rowScanner) (*domain.Item, error) {
	var item domain.Item
	var price, purchaseDate string
	var digital, consumable, exported int

	if err := sc.Scan(&item.ID, &item.OrderID, &item.Vendor, &item.Name,
		&price, &item.Currency, &item.Quantity, &purchaseDate,
		&item.Category, &item.VendorCategory, &item.VendorSKU,
		&item.OrderURL, &item.ItemURL,
		&digital, &consumable, &exported); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price %q: %w", price, err)
	}
	item.Price = parsed

	date, err := time.Parse(domain.DateFormat, purchaseDate)
	if err != nil {
		return nil, fmt.Errorf("parsing stored date %q: %w", purchaseDate, err)
	}
	item.PurchaseDate = date

	item.Digital = digital != 0
	item.Consumable = consumable != 0
	item.ExportedToVault = exported != 0

	return &item, nil
}

// scanItemRow scans a single item row, mapping missing rows to
// domain.ErrNotFound.
func scanItemRow(row *sql.Row) (*domain.Item, error) {
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	return item, nil
}

// scanItems scans multiple item rows.
func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item //nolint:prealloc // size unknown from query
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}
