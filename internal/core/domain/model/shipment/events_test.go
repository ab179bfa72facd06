package shipment_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusChangedToValue(t *testing.T) {
	shipmentID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	fromOffice := kernel.NewUUID()
	notes := "processed at warehouse"

	event := shipment.StatusChanged{
		ShipmentID:   shipmentID,
		FromStatus:   shipment.Accepted,
		ToStatus:     shipment.Processed,
		Actor:        shipment.ActorRef{UserID: actorID},
		FromOfficeID: &fromOffice,
		ToOfficeID:   nil,
		OccurredAt:   1_700_000_000_000,
		Notes:        &notes,
	}

	v := event.ToValue()
	require.Equal(t, strata.KindMap, v.Kind())

	get := func(key string) strata.Value {
		val, ok := v.Get(key)
		require.True(t, ok, "missing key %q", key)
		return val
	}

	assert.Equal(t, "StatusChanged", get("event_type").Text())
	assert.Equal(t, shipmentID.String(), get("shipment_id").Text())
	assert.Equal(t, "ACCEPTED", get("from_status").Text())
	assert.Equal(t, "PROCESSED", get("to_status").Text())
	assert.Equal(t, actorID.String(), get("actor_user_id").Text())
	assert.Equal(t, fromOffice.String(), get("from_office_id").Text())
	assert.Equal(t, strata.KindNull, get("to_office_id").Kind())
	assert.Equal(t, int64(1_700_000_000_000), get("occured_at").Int64())
	assert.Equal(t, notes, get("notes").Text())
}

func TestShipmentCreatedToValue(t *testing.T) {
	shipmentID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	event := shipment.ShipmentCreated{
		ShipmentID: shipmentID,
		Status:     shipment.New,
		Actor:      shipment.ActorRef{UserID: actorID},
		OfficeID:   nil,
		OccurredAt: 1_700_000_000_000,
		Notes:      nil,
	}

	v := event.ToValue()

	get := func(key string) strata.Value {
		val, ok := v.Get(key)
		require.True(t, ok, "missing key %q", key)
		return val
	}

	assert.Equal(t, "ShipmentCreated", get("event_type").Text())
	assert.Equal(t, "NEW", get("status").Text())
	assert.Equal(t, strata.KindNull, get("office_id").Kind())
	assert.Equal(t, strata.KindNull, get("notes").Kind())
}

func TestEventPayloadsHashDeterministically(t *testing.T) {
	shipmentID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	build := func() strata.Value {
		return shipment.StatusChanged{
			ShipmentID: shipmentID,
			FromStatus: shipment.New,
			ToStatus:   shipment.Accepted,
			Actor:      shipment.ActorRef{UserID: actorID},
			OccurredAt: 1_700_000_000_000,
		}.ToValue()
	}

	a, err := strata.HashValue(build())
	require.NoError(t, err)
	b, err := strata.HashValue(build())
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
}
