package commands_test

import (
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommandServices() []order.Service {
	return []order.Service{{ID: "svc-1", Name: "Limpeza profunda", Price: 80}}
}

func testCommandActor() order.Actor {
	return order.Actor{ID: "u-1", Email: "atendente@workshop.test", Name: "Atendente", Role: "atendimento"}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(
			id, "cust-1", "Cliente Teste", "Nike Air Max 90", testCommandServices(),
			order.PriorityHigh, "2026-01-20", "sem pressa", "criado", testCommandActor(),
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, "cust-1", cmd.CustomerID())
		assert.Equal(t, "Cliente Teste", cmd.CustomerName())
		assert.Equal(t, order.PriorityHigh, cmd.Priority())
		assert.Equal(t, "criado", cmd.InitialStatus())
	})

	t.Run("zero_priority_is_allowed_as_unset", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "cust-1", "Cliente Teste", "", testCommandServices(),
			0, "", "", "", testCommandActor(),
		)

		require.NoError(t, err)
		assert.Equal(t, 0, cmd.Priority())
	})

	t.Run("rejects_missing_customer_id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "", "Cliente Teste", "", testCommandServices(),
			0, "", "", "", testCommandActor(),
		)

		require.ErrorIs(t, err, commands.ErrCustomerIsRequired)
	})

	t.Run("rejects_missing_customer_name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "cust-1", "", "", testCommandServices(),
			0, "", "", "", testCommandActor(),
		)

		require.ErrorIs(t, err, commands.ErrCustomerIsRequired)
	})

	t.Run("rejects_empty_services", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "cust-1", "Cliente Teste", "", nil,
			0, "", "", "", testCommandActor(),
		)

		require.ErrorIs(t, err, commands.ErrServicesAreEmpty)
	})

	t.Run("rejects_priority_out_of_range", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "cust-1", "Cliente Teste", "", testCommandServices(),
			4, "", "", "", testCommandActor(),
		)

		require.Error(t, err)
	})

	t.Run("rejects_empty_order_id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, "cust-1", "Cliente Teste", "", testCommandServices(),
			0, "", "", "", testCommandActor(),
		)

		require.Error(t, err)
	})
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
