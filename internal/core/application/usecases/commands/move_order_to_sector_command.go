package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/guard"
)

var (
	ErrMoveOrderToSectorCommandIsNotConstructed = errors.New(
		"MoveOrderToSectorCommand must be created via NewMoveOrderToSectorCommand constructor",
	)
	ErrSectorOrStatusIsRequired = errors.New("either a sector ID or a status hint is required")
)

// MoveOrderToSectorCommand represents a request to advance an order into a
// sector. The target may be named directly by sector ID or indirectly by a
// status hint that the catalog resolves.
type MoveOrderToSectorCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sectorID   string
	statusHint string
	staffName  string
	note       string
	actor      order.Actor

	guard guard.ConstructorGuard
}

// NewMoveOrderToSectorCommand creates a command to move an order into a
// sector. Exactly one of sectorID and statusHint may be empty.
func NewMoveOrderToSectorCommand(
	orderID kernel.UUID,
	sectorID string,
	statusHint string,
	staffName string,
	note string,
	actor order.Actor,
) (MoveOrderToSectorCommand, error) {
	cmd := MoveOrderToSectorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(sectorID, statusHint),
	); err != nil {
		return MoveOrderToSectorCommand{}, err
	}

	cmd.staffName = staffName
	cmd.note = note
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderToSectorCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderToSectorCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c MoveOrderToSectorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SectorID returns the explicit target sector, empty when resolving by status.
func (c MoveOrderToSectorCommand) SectorID() string {
	return c.sectorID
}

// StatusHint returns the raw status used to resolve the target sector.
func (c MoveOrderToSectorCommand) StatusHint() string {
	return c.statusHint
}

// StaffName returns the name of the staff member doing the work, may be empty.
func (c MoveOrderToSectorCommand) StaffName() string {
	return c.staffName
}

// Note returns the free-text note attached to the transition.
func (c MoveOrderToSectorCommand) Note() string {
	return c.note
}

// Actor returns the authenticated user performing the move.
func (c MoveOrderToSectorCommand) Actor() order.Actor {
	return c.actor
}

func (c *MoveOrderToSectorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MoveOrderToSectorCommand) setTarget(sectorID, statusHint string) error {
	if sectorID == "" && statusHint == "" {
		return ErrSectorOrStatusIsRequired
	}

	c.sectorID = sectorID
	c.statusHint = statusHint
	return nil
}
