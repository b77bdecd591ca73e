package ports

import (
	"context"
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
)

// ErrVersionConflict is returned by Update when the order was modified by
// someone else since it was loaded. Callers should reload and retry or
// surface the conflict.
var ErrVersionConflict = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must store the complete aggregate state: services, the
// frozen sector flow, and both history lists.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: a stale version yields
	// ErrVersionConflict and no rows change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, sorted by priority ascending (1 is most
	// urgent) and creation date descending within the same priority.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order. Returns errs.ObjectNotFoundError when no such
	// order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
