// Package services contains the core business logic, implementing the
// driving ports:
//
//   - ImportService: CSV import, classification and idempotent upsert
//   - ExportService: eligibility selection and vault materialization
//   - QueryService: stats and search views
//
// Services depend only on domain types and driven port interfaces;
// adapters are injected by the CLI wiring.
package services
