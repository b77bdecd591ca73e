package queries

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetAllStaffQueryIsNotConstructed = errors.New(
	"GetAllStaffQuery must be created via NewGetAllStaffQuery constructor",
)

// GetAllStaffQuery retrieves active staff members, optionally limited to one
// sector. An empty sector ID means the whole workshop.
type GetAllStaffQuery struct {
	sectorID string

	guard guard.ConstructorGuard
}

// NewGetAllStaffQuery creates a query for active staff.
func NewGetAllStaffQuery(sectorID string) GetAllStaffQuery {
	return GetAllStaffQuery{
		sectorID: sectorID,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStaffQueryIsNotConstructed)
}

// SectorID returns the sector filter, empty for no filter.
func (q GetAllStaffQuery) SectorID() string {
	return q.sectorID
}

// GetAllStaffQueryResponse is one staff member in the read model.
type GetAllStaffQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Email    string
	Role     string
	SectorID string
}
