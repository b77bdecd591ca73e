// Package sector models the workshop departments an order is routed through.
//
// The package includes:
//   - Sector: a static department record with identity, flow position, and
//     display metadata
//   - Catalog: the immutable, ordered sector table built once at startup
//   - FlowDeriver: the keyword classifier that maps an order's service line
//     items to the ordered subset of sectors it must traverse
//   - status-based sector resolution for callers that supply a status string
//     instead of a sector ID
//
// Key business rules:
//   - Flow position values are unique and strictly increasing across active
//     sectors; they define traversal order
//   - The entry and exit stations are mandatory members of every flow
//   - Inactive sectors are hidden from listings but stay resolvable by ID so
//     legacy orders keep working
package sector
