// Package sqlite provides the SQLite-based implementation of the
// ItemStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory. The items table enforces the natural key
// UNIQUE(order_id, vendor_sku, vendor), which is what makes re-running
// an import idempotent.
//
// # Money
//
// Prices are stored as canonical decimal text (shopspring/decimal's
// string form), never as binary floats. Threshold comparisons in SQL
// cast to REAL, which is fine for ordering; equality comparisons use
// the canonical text on both sides.
//
// # Durability
//
// Every mutation is its own statement and commits independently. There
// is no transaction spanning an import batch; a crash mid-import leaves
// a committed prefix that the next run folds into idempotently.
package sqlite
