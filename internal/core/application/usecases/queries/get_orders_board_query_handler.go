package queries

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersBoardQueryHandler retrieves board rows straight from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersBoardQueryHandler creates a handler for board retrieval queries.
func NewGetOrdersBoardQueryHandler(db *gorm.DB) GetOrdersBoardQueryHandler {
	return GetOrdersBoardQueryHandler{db: db}
}

// Handle executes the query and returns board rows sorted by priority
// ascending, then creation date descending.
func (h GetOrdersBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersBoardQuery,
) ([]GetOrdersBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			customer_name,
			sneaker_model,
			priority,
			status,
			current_sector,
			current_staff_name,
			expected_delivery,
			created_at
		FROM orders
		ORDER BY priority, created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersBoardQueryResponse, 0)
	for rows.Next() {
		var row GetOrdersBoardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Code,
			&row.CustomerName,
			&row.SneakerModel,
			&row.Priority,
			&row.Status,
			&row.CurrentSector,
			&row.CurrentStaffName,
			&row.ExpectedDelivery,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
