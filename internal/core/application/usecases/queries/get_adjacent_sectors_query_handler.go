package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAdjacentSectorsQueryHandler reads an order's frozen flow and position
// and resolves the neighboring stations through the catalog.
type GetAdjacentSectorsQueryHandler struct {
	db      *gorm.DB
	catalog *sector.Catalog
}

// NewGetAdjacentSectorsQueryHandler creates a handler for flow neighbor queries.
func NewGetAdjacentSectorsQueryHandler(db *gorm.DB, catalog *sector.Catalog) GetAdjacentSectorsQueryHandler {
	return GetAdjacentSectorsQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query.
func (h GetAdjacentSectorsQueryHandler) Handle(
	ctx context.Context,
	query GetAdjacentSectorsQuery,
) (GetAdjacentSectorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdjacentSectorsQueryResponse{}, err
	}

	var flowJSON []byte
	var currentSector string

	row := h.db.WithContext(ctx).Raw(`
		SELECT sector_flow, current_sector
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&flowJSON, &currentSector); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAdjacentSectorsQueryResponse{},
				errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
		}
		return GetAdjacentSectorsQueryResponse{}, err
	}

	var flow []string
	if err := json.Unmarshal(flowJSON, &flow); err != nil {
		return GetAdjacentSectorsQueryResponse{}, err
	}

	response := GetAdjacentSectorsQueryResponse{CurrentSector: currentSector}

	if next, ok := h.catalog.Next(flow, currentSector); ok {
		response.Next = &AdjacentSector{ID: next.ID, Name: next.Name}
	}
	if previous, ok := h.catalog.Previous(flow, currentSector); ok {
		response.Previous = &AdjacentSector{ID: previous.ID, Name: previous.Name}
	}

	return response, nil
}
