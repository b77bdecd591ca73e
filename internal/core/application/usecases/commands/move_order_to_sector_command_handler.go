package commands

import (
	"context"
	"log/slog"
	"time"

	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"
)

// MoveOrderToSectorCommandHandler drives the sector transition workflow:
// resolve the target sector, apply the transition to the aggregate, persist,
// and notify. Notification is strictly post-commit and best effort: a broker
// failure is logged and parked in the outbox, never returned to the caller.
type MoveOrderToSectorCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    *sector.Catalog
	vocabulary *status.Vocabulary
	notifier   ports.Notifier
	outbox     ports.OutboxRepository
	log        *slog.Logger
}

// NewMoveOrderToSectorCommandHandler creates a handler for sector transitions.
func NewMoveOrderToSectorCommandHandler(
	uowFactory OrderUoWFactory,
	catalog *sector.Catalog,
	vocabulary *status.Vocabulary,
	notifier ports.Notifier,
	outbox ports.OutboxRepository,
	log *slog.Logger,
) MoveOrderToSectorCommandHandler {
	return MoveOrderToSectorCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		vocabulary: vocabulary,
		notifier:   notifier,
		outbox:     outbox,
		log:        log,
	}
}

// Handle processes the transition. Repeated moves into the occupied sector
// are a successful no-op: nothing is written and nothing is notified.
func (h *MoveOrderToSectorCommandHandler) Handle(ctx context.Context, cmd MoveOrderToSectorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := h.resolveTarget(cmd)
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

	moved, err := aggregate.MoveToSector(target, h.vocabulary, cmd.Actor(), cmd.StaffName(), cmd.Note(), now)
	if err != nil {
		return err
	}

	if !moved {
		return nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	terminal := h.vocabulary.IsFinal(string(aggregate.Status()))
	if terminal {
		h.notify(ctx, ports.StatusNotification{
			OrderID:      aggregate.ID().String(),
			OrderCode:    aggregate.Code(),
			CustomerID:   aggregate.CustomerID(),
			CustomerName: aggregate.CustomerName(),
			Status:       string(aggregate.Status()),
			SectorID:     aggregate.CurrentSector(),
			Terminal:     terminal,
			OccurredAt:   now,
		})
	}

	return nil
}

func (h *MoveOrderToSectorCommandHandler) resolveTarget(cmd MoveOrderToSectorCommand) (sector.Sector, error) {
	if cmd.SectorID() != "" {
		target, ok := h.catalog.Get(cmd.SectorID())
		if !ok {
			return sector.Sector{}, sector.NewSectorNotFoundError(cmd.SectorID())
		}
		return target, nil
	}

	target, ok := h.catalog.ResolveByStatus(h.vocabulary, cmd.StatusHint())
	if !ok {
		return sector.Sector{}, sector.NewSectorNotFoundError(cmd.StatusHint())
	}
	return target, nil
}

// notify publishes after the commit. Failures are swallowed: the transition
// already succeeded and must be reported as such.
func (h *MoveOrderToSectorCommandHandler) notify(ctx context.Context, n ports.StatusNotification) {
	if err := h.notifier.Publish(ctx, n); err != nil {
		h.log.Warn("notification publish failed, parking in outbox",
			"order", n.OrderCode, "status", n.Status, "error", err)

		if outboxErr := h.outbox.Add(ctx, n); outboxErr != nil {
			h.log.Error("outbox write failed, notification lost",
				"order", n.OrderCode, "status", n.Status, "error", outboxErr)
		}
	}
}
