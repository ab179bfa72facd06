package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/office"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrCreateOfficeCommandIsNotConstructed = errors.New(
	"CreateOfficeCommand must be created via NewCreateOfficeCommand constructor",
)

// CreateOfficeCommand represents a request to register a new office.
type CreateOfficeCommand struct { //nolint:recvcheck //using for validation
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewCreateOfficeCommand creates a command to register a new office.
func NewCreateOfficeCommand(name, address string) (CreateOfficeCommand, error) {
	if _, err := office.NewOffice(name, address); err != nil {
		return CreateOfficeCommand{}, err
	}

	return CreateOfficeCommand{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfficeCommandIsNotConstructed)
}

// Name returns the office's display name.
func (c CreateOfficeCommand) Name() string { return c.name }

// Address returns the office's street address, possibly empty.
func (c CreateOfficeCommand) Address() string { return c.address }

// CreateOfficeCommandHandler handles office registration. Admin only.
type CreateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewCreateOfficeCommandHandler creates a handler for office registration.
func NewCreateOfficeCommandHandler(uowFactory OfficeUoWFactory) CreateOfficeCommandHandler {
	return CreateOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the office creation command and returns the new office id.
func (h *CreateOfficeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd CreateOfficeCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !act.IsAdmin() {
		return kernel.UUID{}, ErrForbidden
	}

	aggregate, err := office.NewOffice(cmd.Name(), cmd.Address())
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

	if err = uow.OfficeRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
