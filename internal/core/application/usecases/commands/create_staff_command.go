package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand represents a request to register a workshop employee.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	name     string
	email    string
	role     string
	sectorID string

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a new staff member.
// An empty sector ID is allowed for admins, who are not tied to a station.
func NewCreateStaffCommand(
	staffID kernel.UUID,
	name string,
	email string,
	role string,
	sectorID string,
) (CreateStaffCommand, error) {
	cmd := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	cmd.sectorID = sectorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the unique identifier for the new staff member.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the staff member's display name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

// Email returns the staff member's login identity.
func (c CreateStaffCommand) Email() string {
	return c.email
}

// Role returns the staff member's board role.
func (c CreateStaffCommand) Role() string {
	return c.role
}

// SectorID returns the assigned station, empty for admins.
func (c CreateStaffCommand) SectorID() string {
	return c.sectorID
}

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateStaffCommand) setRole(role string) error {
	if role == "" {
		return errs.NewValueIsRequiredError("role")
	}

	c.role = role
	return nil
}
