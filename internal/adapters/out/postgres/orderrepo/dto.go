// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The service list, the frozen flow, and both histories travel as JSONB
// documents; scalar columns carry everything the board and statistics
// queries filter and sort on.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code               string    `gorm:"uniqueIndex"`
	CustomerID         string    `gorm:"index"`
	CustomerName       string
	SneakerModel       string
	Services           []byte `gorm:"type:jsonb"`
	Priority           int    `gorm:"index"`
	Status             string `gorm:"index"`
	StatusHistory      []byte `gorm:"type:jsonb"`
	SectorFlow         []byte `gorm:"type:jsonb"`
	CurrentSector      string `gorm:"index"`
	SectorHistory      []byte `gorm:"type:jsonb"`
	CurrentSectorSince *time.Time
	CurrentStaffName   string
	ExpectedDelivery   string
	ActualDelivery     string
	Remarks            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedByID        string
	CreatedByEmail     string
	CreatedByName      string
	CreatedByRole      string
	UpdatedBy          string
	Version            int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// serviceDTO is the JSONB shape of one service line item.
type serviceDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// statusEntryDTO is the JSONB shape of one status history record.
type statusEntryDTO struct {
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
}

// sectorIntervalDTO is the JSONB shape of one sector stay.
type sectorIntervalDTO struct {
	SectorID      string     `json:"sector_id"`
	SectorName    string     `json:"sector_name"`
	EnteredAt     time.Time  `json:"entered_at"`
	ExitedAt      *time.Time `json:"exited_at,omitempty"`
	EnteredByID   string     `json:"entered_by_id"`
	EnteredByName string     `json:"entered_by_name"`
	EnteringStaff string     `json:"entering_staff,omitempty"`
	ExitedByID    string     `json:"exited_by_id,omitempty"`
	ExitedByName  string     `json:"exited_by_name,omitempty"`
	ExitingStaff  string     `json:"exiting_staff,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	services := make([]serviceDTO, 0, len(aggregate.Services()))
	for _, svc := range aggregate.Services() {
		services = append(services, serviceDTO{ID: svc.ID, Name: svc.Name, Price: svc.Price})
	}

	statusHistory := make([]statusEntryDTO, 0, len(aggregate.StatusHistory()))
	for _, entry := range aggregate.StatusHistory() {
		statusHistory = append(statusHistory, statusEntryDTO{
			Status:    string(entry.Status),
			Date:      entry.Date,
			Time:      entry.Time,
			UserID:    entry.UserID,
			UserName:  entry.UserName,
			Timestamp: entry.Timestamp,
		})
	}

	sectorHistory := make([]sectorIntervalDTO, 0, len(aggregate.SectorHistory()))
	for _, interval := range aggregate.SectorHistory() {
		sectorHistory = append(sectorHistory, sectorIntervalDTO{
			SectorID:      interval.SectorID,
			SectorName:    interval.SectorName,
			EnteredAt:     interval.EnteredAt,
			ExitedAt:      interval.ExitedAt,
			EnteredByID:   interval.EnteredByID,
			EnteredByName: interval.EnteredByName,
			EnteringStaff: interval.EnteringStaff,
			ExitedByID:    interval.ExitedByID,
			ExitedByName:  interval.ExitedByName,
			ExitingStaff:  interval.ExitingStaff,
			Notes:         interval.Notes,
		})
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return OrderDTO{}, err
	}
	statusHistoryJSON, err := json.Marshal(statusHistory)
	if err != nil {
		return OrderDTO{}, err
	}
	flowJSON, err := json.Marshal(aggregate.SectorFlow())
	if err != nil {
		return OrderDTO{}, err
	}
	sectorHistoryJSON, err := json.Marshal(sectorHistory)
	if err != nil {
		return OrderDTO{}, err
	}

	var since *time.Time
	if interval, ok := aggregate.OpenInterval(); ok {
		entered := interval.EnteredAt
		since = &entered
	}

	createdBy := aggregate.CreatedBy()
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Code:               aggregate.Code(),
		CustomerID:         aggregate.CustomerID(),
		CustomerName:       aggregate.CustomerName(),
		SneakerModel:       aggregate.SneakerModel(),
		Services:           servicesJSON,
		Priority:           aggregate.Priority(),
		Status:             string(aggregate.Status()),
		StatusHistory:      statusHistoryJSON,
		SectorFlow:         flowJSON,
		CurrentSector:      aggregate.CurrentSector(),
		SectorHistory:      sectorHistoryJSON,
		CurrentSectorSince: since,
		CurrentStaffName:   aggregate.CurrentStaffName(),
		ExpectedDelivery:   aggregate.ExpectedDelivery(),
		ActualDelivery:     aggregate.ActualDelivery(),
		Remarks:            aggregate.Remarks(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		CreatedByID:        createdBy.ID,
		CreatedByEmail:     createdBy.Email,
		CreatedByName:      createdBy.Name,
		CreatedByRole:      createdBy.Role,
		UpdatedBy:          aggregate.UpdatedBy(),
		Version:            aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var services []serviceDTO
	if err = json.Unmarshal(dto.Services, &services); err != nil {
		return nil, err
	}
	var statusHistory []statusEntryDTO
	if err = json.Unmarshal(dto.StatusHistory, &statusHistory); err != nil {
		return nil, err
	}
	var flow []string
	if err = json.Unmarshal(dto.SectorFlow, &flow); err != nil {
		return nil, err
	}
	var sectorHistory []sectorIntervalDTO
	if err = json.Unmarshal(dto.SectorHistory, &sectorHistory); err != nil {
		return nil, err
	}

	domainServices := make([]order.Service, 0, len(services))
	for _, svc := range services {
		domainServices = append(domainServices, order.Service{ID: svc.ID, Name: svc.Name, Price: svc.Price})
	}

	domainStatusHistory := make([]order.StatusEntry, 0, len(statusHistory))
	for _, entry := range statusHistory {
		domainStatusHistory = append(domainStatusHistory, order.StatusEntry{
			Status:    status.Status(entry.Status),
			Date:      entry.Date,
			Time:      entry.Time,
			UserID:    entry.UserID,
			UserName:  entry.UserName,
			Timestamp: entry.Timestamp,
		})
	}

	domainSectorHistory := make([]order.SectorInterval, 0, len(sectorHistory))
	for _, interval := range sectorHistory {
		domainSectorHistory = append(domainSectorHistory, order.SectorInterval{
			SectorID:      interval.SectorID,
			SectorName:    interval.SectorName,
			EnteredAt:     interval.EnteredAt,
			ExitedAt:      interval.ExitedAt,
			EnteredByID:   interval.EnteredByID,
			EnteredByName: interval.EnteredByName,
			EnteringStaff: interval.EnteringStaff,
			ExitedByID:    interval.ExitedByID,
			ExitedByName:  interval.ExitedByName,
			ExitingStaff:  interval.ExitingStaff,
			Notes:         interval.Notes,
		})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		Code:             dto.Code,
		CustomerID:       dto.CustomerID,
		CustomerName:     dto.CustomerName,
		SneakerModel:     dto.SneakerModel,
		Services:         domainServices,
		Priority:         dto.Priority,
		Status:           status.Status(dto.Status),
		StatusHistory:    domainStatusHistory,
		SectorFlow:       flow,
		CurrentSector:    dto.CurrentSector,
		SectorHistory:    domainSectorHistory,
		CurrentStaffName: dto.CurrentStaffName,
		ExpectedDelivery: dto.ExpectedDelivery,
		ActualDelivery:   dto.ActualDelivery,
		Remarks:          dto.Remarks,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
		CreatedBy: order.Actor{
			ID:    dto.CreatedByID,
			Email: dto.CreatedByEmail,
			Name:  dto.CreatedByName,
			Role:  dto.CreatedByRole,
		},
		UpdatedBy: dto.UpdatedBy,
		Version:   dto.Version,
	})
}
