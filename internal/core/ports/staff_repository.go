package ports

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
type StaffRepository interface {
	// Add persists a new staff member.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff member.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff member by ID.
	// Returns errs.ObjectNotFoundError when no such staff member exists.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetAllActive retrieves active staff, optionally filtered by sector.
	// An empty sectorID means no filter.
	GetAllActive(ctx context.Context, sectorID string) ([]*staff.Staff, error)
}
