package queries

import (
	"context"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/sector"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSectorStatisticsQueryHandler aggregates the orders occupying each
// sector. Statistics are read-only: looking at the board never mutates
// order state.
type GetSectorStatisticsQueryHandler struct {
	db      *gorm.DB
	catalog *sector.Catalog
}

// NewGetSectorStatisticsQueryHandler creates a handler for sector statistics.
func NewGetSectorStatisticsQueryHandler(db *gorm.DB, catalog *sector.Catalog) GetSectorStatisticsQueryHandler {
	return GetSectorStatisticsQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query. Every active sector appears in the response,
// including empty ones. Hours are whole hours since the order entered its
// current sector.
func (h GetSectorStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetSectorStatisticsQuery,
) ([]GetSectorStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			customer_name,
			priority,
			current_sector,
			current_sector_since
		FROM orders
		WHERE current_sector <> ''
		ORDER BY current_sector, priority, created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	bySector := make(map[string][]SectorOrderSummary)

	for rows.Next() {
		var summary SectorOrderSummary
		var id uuid.UUID
		var sectorID string
		var since *time.Time

		err = rows.Scan(
			&id,
			&summary.Code,
			&summary.CustomerName,
			&summary.Priority,
			&sectorID,
			&since,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		if since != nil {
			summary.HoursInSector = int(now.Sub(*since).Hours())
		}

		bySector[sectorID] = append(bySector[sectorID], summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	stats := make([]GetSectorStatisticsQueryResponse, 0, len(h.catalog.ListActive()))
	for _, s := range h.catalog.ListActive() {
		orders := bySector[s.ID]
		if orders == nil {
			orders = []SectorOrderSummary{}
		}
		stats = append(stats, GetSectorStatisticsQueryResponse{
			SectorID:   s.ID,
			SectorName: s.Name,
			Count:      len(orders),
			Orders:     orders,
		})
	}

	return stats, nil
}
