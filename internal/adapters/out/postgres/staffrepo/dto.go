// Package staffrepo provides data transfer objects and mapping functions for staff persistence.
// This package implements the repository pattern for the staff domain aggregate, handling
// the conversion between domain entities and database representations.
package staffrepo

import (
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff aggregates.
type StaffDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role     string    `gorm:"type:varchar(64);not null"`
	SectorID string    `gorm:"type:varchar(64);index"`
	Active   bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for staff entities.
// Overrides GORM's default naming convention to use "staff".
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain aggregate to its database representation.
func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Email:    aggregate.Email(),
		Role:     aggregate.Role(),
		SectorID: aggregate.SectorID(),
		Active:   aggregate.Active(),
	}
}

// toDomain converts a database DTO to a staff domain aggregate using RestoreStaff.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, dto.Email, dto.Role, dto.SectorID, dto.Active)
}
