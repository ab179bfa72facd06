package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/employee"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand represents a request to register a new employee.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	fullName string

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register a new employee.
func NewCreateEmployeeCommand(fullName string) (CreateEmployeeCommand, error) {
	if _, err := employee.NewEmployee(fullName); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return CreateEmployeeCommand{
		fullName: fullName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// FullName returns the employee's display name.
func (c CreateEmployeeCommand) FullName() string { return c.fullName }

// CreateEmployeeCommandHandler handles employee registration. Admin only.
type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee registration.
func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the employee creation command and returns the new employee id.
func (h *CreateEmployeeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd CreateEmployeeCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !act.IsAdmin() {
		return kernel.UUID{}, ErrForbidden
	}

	aggregate, err := employee.NewEmployee(cmd.FullName())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EmployeeRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
