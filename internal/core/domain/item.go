package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents one purchased line item.
// It is the canonical representation after parsing and classification.
type Item struct {
	// ID is the store-assigned surrogate identifier.
	// Zero until the item has been persisted.
	ID int64

	// OrderID is the vendor's order identifier.
	// Part of the natural key (OrderID, VendorSKU, Vendor).
	OrderID string

	// Vendor is the source the item was imported from (e.g. "amazon").
	Vendor string

	// Name is the human-readable item description.
	Name string

	// Price is the unit price as an exact decimal.
	Price decimal.Decimal

	// Currency is the ISO currency code.
	Currency string

	// Quantity is the number of units ordered. At least 1.
	Quantity int

	// PurchaseDate is the calendar date of the order.
	PurchaseDate time.Time

	// Category is our own category, one of Categories.
	Category string

	// VendorCategory is the vendor's category hierarchy, retained
	// verbatim for re-classification and audit.
	VendorCategory string

	// VendorSKU is the vendor's product identifier (ASIN for Amazon).
	// Part of the natural key.
	VendorSKU string

	// OrderURL links to the order page.
	OrderURL string

	// ItemURL links to the product page.
	ItemURL string

	// Digital marks items with no physical counterpart.
	// Computed once at import time; never recomputed on update.
	Digital bool

	// Consumable marks items that are used up rather than owned.
	// Computed once at import time; never recomputed on update.
	Consumable bool

	// ExportedToVault is true once the item has been written into the
	// vault. Monotonic: it is never reset by the pipeline.
	ExportedToVault bool
}

// CategoryOther is the fallback category for items no rule matches.
const CategoryOther = "other"

// Categories is the fixed closed set of tracked categories.
var Categories = []string{
	"3d-printing",
	"games",
	"electronics",
	"clothing",
	"kitchen",
	"golf",
	"furniture",
	"rental-property",
	"smart-home",
	"tools",
	CategoryOther,
}

// ExportableCategories returns the categories whose items qualify for
// export regardless of price: every tracked category except "other".
func ExportableCategories() []string {
	out := make([]string, 0, len(Categories)-1)
	for _, c := range Categories {
		if c != CategoryOther {
			out = append(out, c)
		}
	}
	return out
}

// ImportMode selects how the store treats an item whose natural key
// already exists.
type ImportMode int

const (
	// ModeSkipDuplicates silently ignores inserts for existing keys.
	ModeSkipDuplicates ImportMode = iota

	// ModeUpdateExisting folds the insert into an update of the
	// existing row's mutable fields.
	ModeUpdateExisting
)

// UpsertOutcome reports what an upsert did. Used for reporting only;
// it has no effect on control flow.
type UpsertOutcome string

const (
	OutcomeInserted UpsertOutcome = "inserted"
	OutcomeUpdated  UpsertOutcome = "updated"
	OutcomeSkipped  UpsertOutcome = "skipped"
)

// SearchFilter holds conjunctive filters for the search operation.
// Nil fields are unconstrained; all supplied filters must hold
// simultaneously.
type SearchFilter struct {
	// Date matches the exact purchase date.
	Date *time.Time

	// Amount matches the exact unit price.
	Amount *decimal.Decimal

	// From is the inclusive start of a purchase date range.
	From *time.Time

	// To is the inclusive end of a purchase date range.
	To *time.Time
}

// Empty reports whether no filter was supplied.
func (f SearchFilter) Empty() bool {
	return f.Date == nil && f.Amount == nil && f.From == nil && f.To == nil
}

// DateFormat is the calendar date layout used throughout:
// in the CSV export, in the database, and in rendered notes.
const DateFormat = "2006-01-02"
