// Package domain defines the core business entities for the purchases CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Item: A purchased line item tracked by the system
//   - ImportSummary / ExportSummary: Aggregate reports returned to callers
//   - SearchFilter: Conjunctive filters for the search operation
//   - Config: The resolved configuration value object passed into services
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library plus the decimal money type. All other packages depend
// on domain, never the reverse.
package domain
