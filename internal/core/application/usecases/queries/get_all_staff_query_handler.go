package queries

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllStaffQueryHandler retrieves staff information from the database.
type GetAllStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStaffQueryHandler creates a handler for staff retrieval queries.
func NewGetAllStaffQueryHandler(db *gorm.DB) GetAllStaffQueryHandler {
	return GetAllStaffQueryHandler{db: db}
}

// Handle executes the query to retrieve active staff sorted by name.
func (h GetAllStaffQueryHandler) Handle(
	ctx context.Context,
	query GetAllStaffQuery,
) ([]GetAllStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, name, email, role, sector_id
		FROM staff
		WHERE active
	`
	args := make([]any, 0, 1)
	if query.SectorID() != "" {
		sqlQuery += ` AND sector_id = ?`
		args = append(args, query.SectorID())
	}
	sqlQuery += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]GetAllStaffQueryResponse, 0)
	for rows.Next() {
		var member GetAllStaffQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&member.Name,
			&member.Email,
			&member.Role,
			&member.SectorID,
		)
		if err != nil {
			return nil, err
		}

		staffID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		member.ID = staffID
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
