package commands

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment for a
// client, optionally placing it in an office right away.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	clientID        kernel.UUID
	currentOfficeID *kernel.UUID
	notes           *string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// The office id, when given, must be a valid UUID; whether the caller may use
// it is decided by the handler's authorization step.
func NewCreateShipmentCommand(clientID kernel.UUID, currentOfficeID *kernel.UUID, notes *string) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setCurrentOfficeID(currentOfficeID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ClientID returns the owning client identifier.
func (c CreateShipmentCommand) ClientID() kernel.UUID {
	return c.clientID
}

// CurrentOfficeID returns the initial office, or nil when none was given.
func (c CreateShipmentCommand) CurrentOfficeID() *kernel.UUID {
	return c.currentOfficeID
}

// Notes returns the optional free-form note.
func (c CreateShipmentCommand) Notes() *string {
	return c.notes
}

func (c *CreateShipmentCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateShipmentCommand) setCurrentOfficeID(officeID *kernel.UUID) error {
	if officeID == nil {
		return nil
	}
	if err := officeID.Validate(); err != nil {
		return err
	}

	copied := *officeID
	c.currentOfficeID = &copied
	return nil
}
