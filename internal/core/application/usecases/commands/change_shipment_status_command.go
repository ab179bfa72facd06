package commands

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand represents a request to move a shipment to a
// new lifecycle status, optionally to a new office.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	toStatus   shipment.Status
	toOfficeID *kernel.UUID
	notes      *string

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command to transition a shipment.
// Validates identifiers and that the target status is a known one; whether
// the transition itself is legal is decided by the domain state machine.
func NewChangeShipmentStatusCommand(
	shipmentID kernel.UUID,
	toStatus shipment.Status,
	toOfficeID *kernel.UUID,
	notes *string,
) (ChangeShipmentStatusCommand, error) {
	cmd := ChangeShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setToStatus(toStatus),
		cmd.setToOfficeID(toOfficeID),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ToStatus returns the requested target status.
func (c ChangeShipmentStatusCommand) ToStatus() shipment.Status {
	return c.toStatus
}

// ToOfficeID returns the requested target office, or nil when none was given.
func (c ChangeShipmentStatusCommand) ToOfficeID() *kernel.UUID {
	return c.toOfficeID
}

// Notes returns the optional free-form note.
func (c ChangeShipmentStatusCommand) Notes() *string {
	return c.notes
}

func (c *ChangeShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeShipmentStatusCommand) setToStatus(toStatus shipment.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	c.toStatus = toStatus
	return nil
}

func (c *ChangeShipmentStatusCommand) setToOfficeID(officeID *kernel.UUID) error {
	if officeID == nil {
		return nil
	}
	if err := officeID.Validate(); err != nil {
		return err
	}

	copied := *officeID
	c.toOfficeID = &copied
	return nil
}
