package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrDeleteOfficeCommandIsNotConstructed = errors.New(
	"DeleteOfficeCommand must be created via NewDeleteOfficeCommand constructor",
)

// DeleteOfficeCommand represents a request to soft-delete an office.
type DeleteOfficeCommand struct { //nolint:recvcheck //using for validation
	officeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOfficeCommand creates a command to delete an office.
func NewDeleteOfficeCommand(officeID kernel.UUID) (DeleteOfficeCommand, error) {
	if err := officeID.Validate(); err != nil {
		return DeleteOfficeCommand{}, err
	}

	return DeleteOfficeCommand{
		officeID: officeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOfficeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfficeCommandIsNotConstructed)
}

// OfficeID returns the office to delete.
func (c DeleteOfficeCommand) OfficeID() kernel.UUID { return c.officeID }

// DeleteOfficeCommandHandler handles office deletion. Admin only.
type DeleteOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewDeleteOfficeCommandHandler creates a handler for office deletion.
func NewDeleteOfficeCommandHandler(uowFactory OfficeUoWFactory) DeleteOfficeCommandHandler {
	return DeleteOfficeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the office deletion command.
func (h *DeleteOfficeCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd DeleteOfficeCommand) error {
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

	if err := uow.OfficeRepository().Delete(ctx, cmd.OfficeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
