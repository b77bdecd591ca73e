// Package status defines the customer-facing status vocabulary for repair
// orders and the normalizer that maps historical free-text values onto it.
//
// The package includes:
//   - Status: a lifecycle label, either canonical or legacy free text
//   - Vocabulary: the immutable alias table, terminal set, and per-role
//     kanban column listings, built once at startup and injected
//
// Key business rules:
//   - Normalization is idempotent: canonical values normalize to themselves
//   - The alias table is many-to-one: several historical spellings may map
//     to one canonical value, never the reverse
//   - Unknown statuses pass through unchanged in lenient mode; strict mode
//     rejects them with ErrInvalidStatus
//   - Terminal detection keeps a substring fallback because stored records
//     predate the canonical vocabulary
package status
