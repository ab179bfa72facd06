package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrRemoveEmployeeOfficeCommandIsNotConstructed = errors.New(
	"RemoveEmployeeOfficeCommand must be created via NewRemoveEmployeeOfficeCommand constructor",
)

// RemoveEmployeeOfficeCommand represents a request to revoke an employee's
// authority over an office.
type RemoveEmployeeOfficeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	officeID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveEmployeeOfficeCommand creates a command to remove an assignment.
func NewRemoveEmployeeOfficeCommand(employeeID, officeID kernel.UUID) (RemoveEmployeeOfficeCommand, error) {
	if err := errors.Join(employeeID.Validate(), officeID.Validate()); err != nil {
		return RemoveEmployeeOfficeCommand{}, err
	}

	return RemoveEmployeeOfficeCommand{
		employeeID: employeeID,
		officeID:   officeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEmployeeOfficeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEmployeeOfficeCommandIsNotConstructed)
}

// EmployeeID returns the employee losing the assignment.
func (c RemoveEmployeeOfficeCommand) EmployeeID() kernel.UUID { return c.employeeID }

// OfficeID returns the office being removed.
func (c RemoveEmployeeOfficeCommand) OfficeID() kernel.UUID { return c.officeID }

// RemoveEmployeeOfficeCommandHandler handles assignment removal. Admin only.
type RemoveEmployeeOfficeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewRemoveEmployeeOfficeCommandHandler creates a handler for assignment removal.
func NewRemoveEmployeeOfficeCommandHandler(uowFactory EmployeeUoWFactory) RemoveEmployeeOfficeCommandHandler {
	return RemoveEmployeeOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal command. Removing an office that was never
// assigned is a no-op.
func (h *RemoveEmployeeOfficeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd RemoveEmployeeOfficeCommand) error {
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

	aggregate.RemoveOffice(cmd.OfficeID())

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
