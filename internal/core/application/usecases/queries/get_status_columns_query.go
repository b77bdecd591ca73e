package queries

import (
	"errors"

	"repairshop/internal/pkg/guard"
)

var ErrGetStatusColumnsQueryIsNotConstructed = errors.New(
	"GetStatusColumnsQuery must be created via NewGetStatusColumnsQuery constructor",
)

// GetStatusColumnsQuery retrieves the kanban column scaffold: the ordered
// status names a board should render. An empty role means the full board.
type GetStatusColumnsQuery struct {
	role string

	guard guard.ConstructorGuard
}

// NewGetStatusColumnsQuery creates a query for the board columns of a role.
func NewGetStatusColumnsQuery(role string) GetStatusColumnsQuery {
	return GetStatusColumnsQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusColumnsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusColumnsQueryIsNotConstructed)
}

// Role returns the requesting role, empty for the unfiltered board.
func (q GetStatusColumnsQuery) Role() string {
	return q.role
}

// GetStatusColumnsQueryResponse is the ordered column list. Columns start
// empty; the client fills them from the orders board.
type GetStatusColumnsQueryResponse struct {
	Columns []string
}
