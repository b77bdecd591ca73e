package commands

import (
	"context"

	"repairshop/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler handles staff registration.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateStaffCommandHandler creates a handler for staff registration.
func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff registration command.
func (h *CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := staff.NewStaff(cmd.StaffID(), cmd.Name(), cmd.Email(), cmd.Role(), cmd.SectorID())
	if err != nil {
		return err
	}

	if err = uow.StaffRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
