package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrVaultNotConfigured indicates an export was requested without a
	// resolved vault path. This is a fatal precondition: the whole
	// export aborts before any item is processed.
	ErrVaultNotConfigured = errors.New("no vault configured")

	// ErrDatabaseExists indicates a migration would overwrite an
	// existing database file.
	ErrDatabaseExists = errors.New("destination database already exists")
)
