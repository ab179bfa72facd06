package shipment_test

import (
	"testing"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	officeID := kernel.NewUUID()

	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &officeID)
	require.NoError(t, err)

	assert.Equal(t, shipment.New, s.Status())
	require.NotNil(t, s.CurrentOfficeID())
	assert.True(t, s.CurrentOfficeID().IsEqual(officeID))
	require.NoError(t, s.Validate())
}

func TestNewShipmentWithoutOffice(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.Nil(t, s.CurrentOfficeID())
}

func TestNewShipmentRejectsInvalidIDs(t *testing.T) {
	var zero kernel.UUID

	_, err := shipment.NewShipment(zero, kernel.NewUUID(), nil)
	require.Error(t, err)

	_, err = shipment.NewShipment(kernel.NewUUID(), zero, nil)
	require.Error(t, err)
}

func TestRestoreShipmentRejectsInvalidStatus(t *testing.T) {
	_, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		shipment.Unknown, nil,
		time.Now(), time.Now(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestShipmentValidateRequiresConstructor(t *testing.T) {
	var s shipment.Shipment
	assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestOfficeChangedBy(t *testing.T) {
	officeA := kernel.NewUUID()
	officeB := kernel.NewUUID()

	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &officeA)
	require.NoError(t, err)

	sameOffice := officeA
	assert.False(t, s.OfficeChangedBy(&sameOffice))
	assert.True(t, s.OfficeChangedBy(&officeB))
	assert.True(t, s.OfficeChangedBy(nil), "dropping the office counts as a change")

	noOffice, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	assert.False(t, noOffice.OfficeChangedBy(nil))
	assert.True(t, noOffice.OfficeChangedBy(&officeA))
}

func TestChangeStatusFollowsTransitionRules(t *testing.T) {
	officeA := kernel.NewUUID()

	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &officeA)
	require.NoError(t, err)

	sameOffice := officeA
	require.NoError(t, s.ChangeStatus(shipment.Accepted, &sameOffice))
	assert.Equal(t, shipment.Accepted, s.Status())

	err = s.ChangeStatus(shipment.Delivered, &sameOffice)
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	assert.Equal(t, shipment.Accepted, s.Status(), "failed transition must not mutate the snapshot")
}

func TestChangeStatusOfficeHop(t *testing.T) {
	officeA := kernel.NewUUID()
	officeB := kernel.NewUUID()

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		shipment.Processed, &officeA,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	t.Run("hop outside InTransit is rejected", func(t *testing.T) {
		err := s.ChangeStatus(shipment.Cancelled, &officeB)
		require.ErrorIs(t, err, shipment.ErrOfficeHopNotAllowed)
		assert.Equal(t, shipment.Processed, s.Status())
	})

	t.Run("hop into InTransit moves the office", func(t *testing.T) {
		require.NoError(t, s.ChangeStatus(shipment.InTransit, &officeB))
		assert.Equal(t, shipment.InTransit, s.Status())
		require.NotNil(t, s.CurrentOfficeID())
		assert.True(t, s.CurrentOfficeID().IsEqual(officeB))
	})
}

func TestChangeStatusIntoInTransitWithoutTargetKeepsOffice(t *testing.T) {
	officeA := kernel.NewUUID()

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		shipment.Processed, &officeA,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	// No target office while the shipment sits in one counts as an office
	// change, which is only legal into InTransit; the stored office stays.
	require.NoError(t, s.ChangeStatus(shipment.InTransit, nil))
	require.NotNil(t, s.CurrentOfficeID())
	assert.True(t, s.CurrentOfficeID().IsEqual(officeA))
}

func TestChangeStatusTerminalKeepsOffice(t *testing.T) {
	officeA := kernel.NewUUID()

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		shipment.InTransit, &officeA,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	sameOffice := officeA
	require.NoError(t, s.ChangeStatus(shipment.Delivered, &sameOffice))
	require.NotNil(t, s.CurrentOfficeID(), "terminal transitions never clear the office")
	assert.True(t, s.CurrentOfficeID().IsEqual(officeA))

	err = s.ChangeStatus(shipment.New, &sameOffice)
	require.ErrorIs(t, err, shipment.ErrTerminalState)
}
