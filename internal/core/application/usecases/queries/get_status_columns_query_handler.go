package queries

import (
	"context"

	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/pkg/errs"
)

// GetStatusColumnsQueryHandler answers column queries straight from the
// vocabulary; no database roundtrip is needed.
type GetStatusColumnsQueryHandler struct {
	vocabulary *status.Vocabulary
}

// NewGetStatusColumnsQueryHandler creates a handler for column queries.
func NewGetStatusColumnsQueryHandler(vocabulary *status.Vocabulary) GetStatusColumnsQueryHandler {
	return GetStatusColumnsQueryHandler{vocabulary: vocabulary}
}

// Handle executes the query. Unknown roles are an error, not an empty board.
func (h GetStatusColumnsQueryHandler) Handle(
	_ context.Context,
	query GetStatusColumnsQuery,
) (GetStatusColumnsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusColumnsQueryResponse{}, err
	}

	var statuses []status.Status
	if query.Role() == "" {
		statuses = h.vocabulary.All()
	} else {
		var ok bool
		statuses, ok = h.vocabulary.ColumnsByRole(query.Role())
		if !ok {
			return GetStatusColumnsQueryResponse{}, errs.NewObjectNotFoundError("role", query.Role())
		}
	}

	columns := make([]string, len(statuses))
	for i, s := range statuses {
		columns[i] = string(s)
	}

	return GetStatusColumnsQueryResponse{Columns: columns}, nil
}
