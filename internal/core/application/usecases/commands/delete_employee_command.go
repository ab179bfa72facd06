package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand represents a request to soft-delete an employee.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteEmployeeCommand creates a command to delete an employee.
func NewDeleteEmployeeCommand(employeeID kernel.UUID) (DeleteEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return DeleteEmployeeCommand{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the employee to delete.
func (c DeleteEmployeeCommand) EmployeeID() kernel.UUID { return c.employeeID }

// DeleteEmployeeCommandHandler handles employee deletion. Admin only.
// Deletion removes the employee's office assignments with it, so a deleted
// employee immediately loses all office scope.
type DeleteEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewDeleteEmployeeCommandHandler creates a handler for employee deletion.
func NewDeleteEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the employee deletion command.
func (h *DeleteEmployeeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd DeleteEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !act.IsAdmin() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EmployeeRepository().Delete(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
