package commands_test

import (
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoveOrderToSectorCommand(t *testing.T) {
	t.Run("accepts_explicit_sector", func(t *testing.T) {
		cmd, err := commands.NewMoveOrderToSectorCommand(
			kernel.NewUUID(), "lavagem", "", "Maria", "couro delicado", testCommandActor(),
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "lavagem", cmd.SectorID())
		assert.Empty(t, cmd.StatusHint())
		assert.Equal(t, "Maria", cmd.StaffName())
		assert.Equal(t, "couro delicado", cmd.Note())
	})

	t.Run("accepts_status_hint", func(t *testing.T) {
		cmd, err := commands.NewMoveOrderToSectorCommand(
			kernel.NewUUID(), "", "Lavagem - A Fazer", "", "", testCommandActor(),
		)

		require.NoError(t, err)
		assert.Equal(t, "Lavagem - A Fazer", cmd.StatusHint())
	})

	t.Run("rejects_missing_target", func(t *testing.T) {
		_, err := commands.NewMoveOrderToSectorCommand(
			kernel.NewUUID(), "", "", "", "", testCommandActor(),
		)

		require.ErrorIs(t, err, commands.ErrSectorOrStatusIsRequired)
	})

	t.Run("rejects_empty_order_id", func(t *testing.T) {
		_, err := commands.NewMoveOrderToSectorCommand(
			kernel.UUID{}, "lavagem", "", "", "", testCommandActor(),
		)

		require.Error(t, err)
	})
}

func TestMoveOrderToSectorCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.MoveOrderToSectorCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrMoveOrderToSectorCommandIsNotConstructed)
}
