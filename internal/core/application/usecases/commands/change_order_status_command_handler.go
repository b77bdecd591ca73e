package commands

import (
	"context"
	"log/slog"
	"time"

	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies direct status updates. Every real
// change is notified best-effort after the commit, matching the board's
// behavior where customers follow along per column.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	vocabulary *status.Vocabulary
	notifier   ports.Notifier
	outbox     ports.OutboxRepository
	log        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	vocabulary *status.Vocabulary,
	notifier ports.Notifier,
	outbox ports.OutboxRepository,
	log *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		vocabulary: vocabulary,
		notifier:   notifier,
		outbox:     outbox,
		log:        log,
	}
}

// Handle processes the status update. Setting the status an order already
// has is a successful no-op with no history entry and no notification.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newStatus, err := h.vocabulary.Normalize(cmd.NewStatus(), status.NormalizeOptions{})
	if err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.ChangeStatus(newStatus, cmd.Actor(), now)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notification := ports.StatusNotification{
		OrderID:      aggregate.ID().String(),
		OrderCode:    aggregate.Code(),
		CustomerID:   aggregate.CustomerID(),
		CustomerName: aggregate.CustomerName(),
		Status:       string(aggregate.Status()),
		SectorID:     aggregate.CurrentSector(),
		Terminal:     h.vocabulary.IsFinal(string(aggregate.Status())),
		OccurredAt:   now,
	}

	if err = h.notifier.Publish(ctx, notification); err != nil {
		h.log.Warn("notification publish failed, parking in outbox",
			"order", notification.OrderCode, "status", notification.Status, "error", err)

		if outboxErr := h.outbox.Add(ctx, notification); outboxErr != nil {
			h.log.Error("outbox write failed, notification lost",
				"order", notification.OrderCode, "status", notification.Status, "error", outboxErr)
		}
	}

	return nil
}
