package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrUpdateEmployeeCommandIsNotConstructed = errors.New(
	"UpdateEmployeeCommand must be created via NewUpdateEmployeeCommand constructor",
)

// UpdateEmployeeCommand represents a request to rename an employee.
type UpdateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	fullName   string

	guard guard.ConstructorGuard
}

// NewUpdateEmployeeCommand creates a command to update an employee.
func NewUpdateEmployeeCommand(employeeID kernel.UUID, fullName string) (UpdateEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return UpdateEmployeeCommand{}, err
	}

	return UpdateEmployeeCommand{
		employeeID: employeeID,
		fullName:   fullName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the employee to update.
func (c UpdateEmployeeCommand) EmployeeID() kernel.UUID { return c.employeeID }

// FullName returns the new display name.
func (c UpdateEmployeeCommand) FullName() string { return c.fullName }

// UpdateEmployeeCommandHandler handles employee updates. Admin only.
type UpdateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewUpdateEmployeeCommandHandler creates a handler for employee updates.
func NewUpdateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) UpdateEmployeeCommandHandler {
	return UpdateEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the employee update command.
func (h *UpdateEmployeeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd UpdateEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !act.IsAdmin() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.FullName()); err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EmployeeRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
