package queries_test

import (
	"testing"

	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusColumnsQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetStatusColumnsQueryHandler(status.NewVocabulary())
	ctx := t.Context()

	t.Run("empty_role_returns_the_full_board", func(t *testing.T) {
		response, err := h.Handle(ctx, queries.NewGetStatusColumnsQuery(""))

		require.NoError(t, err)
		assert.Len(t, response.Columns, 20)
		assert.Equal(t, string(status.AtendimentoRecebido), response.Columns[0])
		assert.Equal(t, string(status.AtendimentoEntregue), response.Columns[len(response.Columns)-1])
	})

	t.Run("production_role_gets_its_three_columns", func(t *testing.T) {
		response, err := h.Handle(ctx, queries.NewGetStatusColumnsQuery("pintura"))

		require.NoError(t, err)
		assert.Equal(t, []string{
			string(status.PinturaAFazer),
			string(status.PinturaEmAndamento),
			string(status.PinturaConcluido),
		}, response.Columns)
	})

	t.Run("admin_gets_everything", func(t *testing.T) {
		response, err := h.Handle(ctx, queries.NewGetStatusColumnsQuery("admin"))

		require.NoError(t, err)
		assert.Len(t, response.Columns, 20)
	})

	t.Run("unknown_role_is_an_error", func(t *testing.T) {
		_, err := h.Handle(ctx, queries.NewGetStatusColumnsQuery("gerencia"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not_constructed_query_is_rejected", func(t *testing.T) {
		_, err := h.Handle(ctx, queries.GetStatusColumnsQuery{})

		require.ErrorIs(t, err, queries.ErrGetStatusColumnsQueryIsNotConstructed)
	})
}
