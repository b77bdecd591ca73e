package queries

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetAdjacentSectorsQueryIsNotConstructed = errors.New(
	"GetAdjacentSectorsQuery must be created via NewGetAdjacentSectorsQuery constructor",
)

// GetAdjacentSectorsQuery retrieves the next and previous stations of an
// order's frozen flow, relative to where the order currently sits.
type GetAdjacentSectorsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAdjacentSectorsQuery creates a query for an order's flow neighbors.
func NewGetAdjacentSectorsQuery(orderID kernel.UUID) (GetAdjacentSectorsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAdjacentSectorsQuery{}, err
	}

	return GetAdjacentSectorsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdjacentSectorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdjacentSectorsQueryIsNotConstructed)
}

// OrderID returns the order whose neighbors are requested.
func (q GetAdjacentSectorsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AdjacentSector is one neighbor in the flow.
type AdjacentSector struct {
	ID   string
	Name string
}

// GetAdjacentSectorsQueryResponse holds the neighbors of the current sector.
// Next is nil at the end of the flow, Previous at the start; both are nil
// when the order has not entered any sector yet.
type GetAdjacentSectorsQueryResponse struct {
	CurrentSector string
	Next          *AdjacentSector
	Previous      *AdjacentSector
}
