package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a request to change a client's details.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	fullName string
	email    string
	phone    string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client.
func NewUpdateClientCommand(clientID kernel.UUID, fullName, email, phone string) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := clientID.Validate(); err != nil {
		return UpdateClientCommand{}, err
	}

	cmd.clientID = clientID
	cmd.fullName = fullName
	cmd.email = email
	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID { return c.clientID }

// FullName returns the new display name.
func (c UpdateClientCommand) FullName() string { return c.fullName }

// Email returns the new contact email.
func (c UpdateClientCommand) Email() string { return c.email }

// Phone returns the new contact phone, possibly empty.
func (c UpdateClientCommand) Phone() string { return c.phone }

// UpdateClientCommandHandler handles client updates. Admin only.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the client update command.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd UpdateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !act.IsAdmin() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.FullName()); err != nil {
		return err
	}
	if err = aggregate.UpdateContact(cmd.Email(), cmd.Phone()); err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
