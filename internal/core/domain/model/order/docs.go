// Package order contains the Order aggregate: a repair job with its frozen
// sector flow, append-only status history, and interval-based sector history.
package order
