// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetOrdersBoardQueryIsNotConstructed = errors.New(
	"GetOrdersBoardQuery must be created via NewGetOrdersBoardQuery constructor",
)

// GetOrdersBoardQuery retrieves every order as a board row, most urgent
// first: priority ascending, newest first within the same priority.
type GetOrdersBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersBoardQuery creates a query for the full orders board.
func NewGetOrdersBoardQuery() GetOrdersBoardQuery {
	return GetOrdersBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersBoardQueryIsNotConstructed)
}

// GetOrdersBoardQueryResponse is one board row.
type GetOrdersBoardQueryResponse struct {
	ID               kernel.UUID
	Code             string
	CustomerName     string
	SneakerModel     string
	Priority         int
	Status           string
	CurrentSector    string
	CurrentStaffName string
	ExpectedDelivery string
	CreatedAt        time.Time
}
