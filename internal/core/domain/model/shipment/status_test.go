package shipment_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())

	assert.False(t, shipment.New.IsTerminal())
	assert.False(t, shipment.Accepted.IsTerminal())
	assert.False(t, shipment.Processed.IsTerminal())
	assert.False(t, shipment.InTransit.IsTerminal())
}

func TestStatusString(t *testing.T) {
	cases := map[shipment.Status]string{
		shipment.New:       "NEW",
		shipment.Accepted:  "ACCEPTED",
		shipment.Processed: "PROCESSED",
		shipment.InTransit: "IN_TRANSIT",
		shipment.Delivered: "DELIVERED",
		shipment.Cancelled: "CANCELLED",
		shipment.Unknown:   "UNKNOWN",
		shipment.Status(42): "UNKNOWN",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		valid := []shipment.Status{
			shipment.New,
			shipment.Accepted,
			shipment.Processed,
			shipment.InTransit,
			shipment.Delivered,
			shipment.Cancelled,
		}

		for _, status := range valid {
			parsed, err := shipment.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown input instead of defaulting", func(t *testing.T) {
		_, err := shipment.StatusFromString("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = shipment.StatusFromString("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusValidate(t *testing.T) {
	require.NoError(t, shipment.New.Validate())
	require.NoError(t, shipment.Cancelled.Validate())

	assert.ErrorIs(t, shipment.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, shipment.Status(42).Validate(), errs.ErrValueIsInvalid)
}
