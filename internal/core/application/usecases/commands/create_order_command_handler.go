package commands

import (
	"context"
	"time"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It derives the sector flow from the service names exactly once, generates
// the sequential display code, and persists the new order transactionally.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	codeGenerator ports.OrderCodeGenerator
	deriver       sector.FlowDeriver
	vocabulary    *status.Vocabulary
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codeGenerator ports.OrderCodeGenerator,
	deriver sector.FlowDeriver,
	vocabulary *status.Vocabulary,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
		deriver:       deriver,
		vocabulary:    vocabulary,
	}
}

// Handle processes the order creation command.
// The derived flow is frozen into the order: editing services later does not
// re-route an order already in the shop.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	code, err := h.codeGenerator.Next(ctx, now)
	if err != nil {
		return err
	}

	serviceNames := make([]string, 0, len(cmd.Services()))
	for _, svc := range cmd.Services() {
		serviceNames = append(serviceNames, svc.Name)
	}
	flow := h.deriver.Derive(serviceNames)

	initialStatus, err := h.vocabulary.Normalize(cmd.InitialStatus(), status.NormalizeOptions{})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		code,
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.SneakerModel(),
		cmd.Services(),
		cmd.Priority(),
		cmd.ExpectedDelivery(),
		cmd.Remarks(),
		initialStatus,
		flow,
		cmd.Actor(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
