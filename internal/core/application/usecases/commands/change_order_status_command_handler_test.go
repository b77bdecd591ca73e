package commands_test

import (
	"errors"
	"testing"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangeStatusHandler(
	factory commands.OrderUoWFactory,
	notifier ports.Notifier,
	outbox ports.OutboxRepository,
) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		factory, status.NewVocabulary(), notifier, outbox, discardLogger(),
	)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "Lavagem - A Fazer", testCommandActor())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "Lavagem - A Fazer", cmd.NewStatus())
	})

	t.Run("rejects_empty_status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "", testCommandActor())

		require.Error(t, err)
	})

	t.Run("rejects_empty_order_id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "Lavagem - A Fazer", testCommandActor())

		require.Error(t, err)
	})
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	catalog := sector.DefaultCatalog()
	vocab := status.NewVocabulary()
	aggregate := aggregateInSector(t, catalog, vocab, "")
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), "Atendimento - Orçado", testCommandActor())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	var published ports.StatusNotification
	notifier := new(MockNotifier)
	notifier.On("Publish", mock.Anything, mock.AnythingOfType("ports.StatusNotification")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(ports.StatusNotification)
		}).
		Return(nil).Once()

	h := newChangeStatusHandler(factory, notifier, new(MockOutboxRepository))
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, status.AtendimentoOrcado, aggregate.Status())
	require.Equal(t, string(status.AtendimentoOrcado), published.Status)
	require.False(t, published.Terminal)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AliasNoopIsSilent(t *testing.T) {
	ctx := t.Context()
	catalog := sector.DefaultCatalog()
	vocab := status.NewVocabulary()
	// Fresh orders already carry Atendimento - Recebido; "criado" is its alias
	aggregate := aggregateInSector(t, catalog, vocab, "")
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), "criado", testCommandActor())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := newChangeStatusHandler(factory, notifier, new(MockOutboxRepository))
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.StatusHistory(), 1, "No duplicate history entry")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_PublishFailureParksInOutbox(t *testing.T) {
	ctx := t.Context()
	catalog := sector.DefaultCatalog()
	vocab := status.NewVocabulary()
	aggregate := aggregateInSector(t, catalog, vocab, "")
	cmd, _ := commands.NewChangeOrderStatusCommand(aggregate.ID(), "entregue", testCommandActor())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", mock.Anything, mock.AnythingOfType("ports.StatusNotification")).
		Return(errors.New("broker unreachable")).Once()

	var parked ports.StatusNotification
	outbox := new(MockOutboxRepository)
	outbox.On("Add", mock.Anything, mock.AnythingOfType("ports.StatusNotification")).
		Run(func(args mock.Arguments) {
			parked = args.Get(1).(ports.StatusNotification)
		}).
		Return(nil).Once()

	h := newChangeStatusHandler(factory, notifier, outbox)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, string(status.AtendimentoEntregue), parked.Status)
	require.True(t, parked.Terminal)
	outbox.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, "entregue", testCommandActor())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory, new(MockNotifier), new(MockOutboxRepository))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
