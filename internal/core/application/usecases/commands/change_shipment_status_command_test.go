package commands_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeShipmentStatusCommand(t *testing.T) {
	shipmentID := kernel.NewUUID()
	officeID := kernel.NewUUID()

	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, shipment.Accepted, &officeID, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.ShipmentID().IsEqual(shipmentID))
	assert.Equal(t, shipment.Accepted, cmd.ToStatus())
	require.NotNil(t, cmd.ToOfficeID())
	assert.True(t, cmd.ToOfficeID().IsEqual(officeID))
}

func TestNewChangeShipmentStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeShipmentStatusCommand(kernel.NewUUID(), shipment.Unknown, nil, nil)
	require.Error(t, err)
}

func TestChangeShipmentStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ChangeShipmentStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeShipmentStatusCommandIsNotConstructed)
}
