package queries

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetSectorStatisticsQueryIsNotConstructed = errors.New(
	"GetSectorStatisticsQuery must be created via NewGetSectorStatisticsQuery constructor",
)

// GetSectorStatisticsQuery retrieves the workload of every active sector:
// how many orders sit in each station and for how long.
type GetSectorStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSectorStatisticsQuery creates a query for sector workload statistics.
func NewGetSectorStatisticsQuery() GetSectorStatisticsQuery {
	return GetSectorStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSectorStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetSectorStatisticsQueryIsNotConstructed)
}

// SectorOrderSummary is one order inside a sector's statistics.
type SectorOrderSummary struct {
	ID            kernel.UUID
	Code          string
	CustomerName  string
	Priority      int
	HoursInSector int
}

// GetSectorStatisticsQueryResponse is the workload of one sector.
type GetSectorStatisticsQueryResponse struct {
	SectorID   string
	SectorName string
	Count      int
	Orders     []SectorOrderSummary
}
