package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrUpdateOfficeCommandIsNotConstructed = errors.New(
	"UpdateOfficeCommand must be created via NewUpdateOfficeCommand constructor",
)

// UpdateOfficeCommand represents a request to change an office's details.
type UpdateOfficeCommand struct { //nolint:recvcheck //using for validation
	officeID kernel.UUID
	name     string
	address  string

	guard guard.ConstructorGuard
}

// NewUpdateOfficeCommand creates a command to update an office.
func NewUpdateOfficeCommand(officeID kernel.UUID, name, address string) (UpdateOfficeCommand, error) {
	if err := officeID.Validate(); err != nil {
		return UpdateOfficeCommand{}, err
	}

	return UpdateOfficeCommand{
		officeID: officeID,
		name:     name,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOfficeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfficeCommandIsNotConstructed)
}

// OfficeID returns the office to update.
func (c UpdateOfficeCommand) OfficeID() kernel.UUID { return c.officeID }

// Name returns the new display name.
func (c UpdateOfficeCommand) Name() string { return c.name }

// Address returns the new street address, possibly empty.
func (c UpdateOfficeCommand) Address() string { return c.address }

// UpdateOfficeCommandHandler handles office updates. Admin only.
type UpdateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewUpdateOfficeCommandHandler creates a handler for office updates.
func NewUpdateOfficeCommandHandler(uowFactory OfficeUoWFactory) UpdateOfficeCommandHandler {
	return UpdateOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the office update command.
func (h *UpdateOfficeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd UpdateOfficeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !act.IsAdmin() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.OfficeRepository().Get(ctx, cmd.OfficeID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Address()); err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OfficeRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
