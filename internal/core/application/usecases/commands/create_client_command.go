package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/client"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	fullName string
	email    string
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
func NewCreateClientCommand(fullName, email, phone string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	// Field rules live in the aggregate; construct one to validate early.
	if _, err := client.NewClient(fullName, email, phone); err != nil {
		return CreateClientCommand{}, err
	}

	cmd.fullName = fullName
	cmd.email = email
	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// FullName returns the client's display name.
func (c CreateClientCommand) FullName() string { return c.fullName }

// Email returns the client's contact email.
func (c CreateClientCommand) Email() string { return c.email }

// Phone returns the client's contact phone, possibly empty.
func (c CreateClientCommand) Phone() string { return c.phone }

// CreateClientCommandHandler handles client registration. Admin only.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the client creation command and returns the new client id.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd CreateClientCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !act.IsAdmin() {
		return kernel.UUID{}, ErrForbidden
	}

	aggregate, err := client.NewClient(cmd.FullName(), cmd.Email(), cmd.Phone())
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

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
