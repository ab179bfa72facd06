package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrAssignEmployeeOfficeCommandIsNotConstructed = errors.New(
	"AssignEmployeeOfficeCommand must be created via NewAssignEmployeeOfficeCommand constructor",
)

// AssignEmployeeOfficeCommand represents a request to grant an employee
// authority over an office. The assignment set feeds the employee's
// allowed-office scope on every authenticated call.
type AssignEmployeeOfficeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	officeID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignEmployeeOfficeCommand creates a command to assign an office.
func NewAssignEmployeeOfficeCommand(employeeID, officeID kernel.UUID) (AssignEmployeeOfficeCommand, error) {
	if err := errors.Join(employeeID.Validate(), officeID.Validate()); err != nil {
		return AssignEmployeeOfficeCommand{}, err
	}

	return AssignEmployeeOfficeCommand{
		employeeID: employeeID,
		officeID:   officeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignEmployeeOfficeCommand) Validate() error {
	return c.guard.Validate(ErrAssignEmployeeOfficeCommandIsNotConstructed)
}

// EmployeeID returns the employee gaining the assignment.
func (c AssignEmployeeOfficeCommand) EmployeeID() kernel.UUID { return c.employeeID }

// OfficeID returns the office being assigned.
func (c AssignEmployeeOfficeCommand) OfficeID() kernel.UUID { return c.officeID }

// AssignEmployeeOfficeCommandHandler handles office assignment. Admin only.
type AssignEmployeeOfficeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewAssignEmployeeOfficeCommandHandler creates a handler for office assignment.
func NewAssignEmployeeOfficeCommandHandler(uowFactory EmployeeUoWFactory) AssignEmployeeOfficeCommandHandler {
	return AssignEmployeeOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the assignment command. Both the employee and the office
// must exist; assigning an office twice is a no-op.
func (h *AssignEmployeeOfficeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd AssignEmployeeOfficeCommand) error {
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
	if _, err = uow.OfficeRepository().Get(ctx, cmd.OfficeID()); err != nil {
		return err
	}

	if err = aggregate.AssignOffice(cmd.OfficeID()); err != nil {
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
