package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a direct status update outside the
// sector workflow, the path used by the kanban board drag-and-drop.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus string
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to update an order's status.
// The status is a raw string; the handler normalizes it leniently.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	newStatus string,
	actor order.Actor,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the raw requested status.
func (c ChangeOrderStatusCommand) NewStatus() string {
	return c.newStatus
}

// Actor returns the authenticated user performing the update.
func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.newStatus = newStatus
	return nil
}
