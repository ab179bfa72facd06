package strata_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCanonicalLayout(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		scb, err := strata.Encode(strata.Null())
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00}, scb)
	})

	t.Run("int", func(t *testing.T) {
		scb, err := strata.Encode(strata.Int(1))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 1}, scb)
	})

	t.Run("negative int uses two's complement", func(t *testing.T) {
		scb, err := strata.Encode(strata.Int(-1))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, scb)
	})

	t.Run("string", func(t *testing.T) {
		scb, err := strata.Encode(strata.String("ok"))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0, 0, 0, 2, 'o', 'k'}, scb)
	})

	t.Run("map entries are emitted key-sorted", func(t *testing.T) {
		scb, err := strata.Encode(strata.Map(
			strata.Entry("b", strata.Null()),
			strata.Entry("a", strata.Null()),
		))
		require.NoError(t, err)
		assert.Equal(t, []byte{
			0x04, 0, 0, 0, 2,
			0, 0, 0, 1, 'a', 0x00,
			0, 0, 0, 1, 'b', 0x00,
		}, scb)
	})
}

func TestEncodeIsDeterministicAcrossInsertionOrders(t *testing.T) {
	v1 := strata.Map(
		strata.Entry("event_type", strata.String("StatusChanged")),
		strata.Entry("shipment_id", strata.String("shipment-1")),
		strata.Entry("from", strata.String("ACCEPTED")),
		strata.Entry("to", strata.String("PROCESSED")),
		strata.Entry("occurred_at", strata.Int(1_700_000_000_000)),
	)
	v2 := strata.Map(
		strata.Entry("occurred_at", strata.Int(1_700_000_000_000)),
		strata.Entry("to", strata.String("PROCESSED")),
		strata.Entry("from", strata.String("ACCEPTED")),
		strata.Entry("shipment_id", strata.String("shipment-1")),
		strata.Entry("event_type", strata.String("StatusChanged")),
	)

	scb1, err := strata.Encode(v1)
	require.NoError(t, err)
	scb2, err := strata.Encode(v2)
	require.NoError(t, err)

	assert.Equal(t, scb1, scb2, "canonical bytes must not depend on construction order")
}

func TestEncodeRejectsInvalidValue(t *testing.T) {
	var invalid strata.Value

	_, err := strata.Encode(invalid)
	require.Error(t, err)

	var encodeErr *strata.EncodeError
	require.ErrorAs(t, err, &encodeErr)
}

func TestEncodeRejectsInvalidNestedValue(t *testing.T) {
	var invalid strata.Value
	v := strata.Map(strata.Entry("payload", strata.List(invalid)))

	_, err := strata.Encode(v)

	var encodeErr *strata.EncodeError
	require.ErrorAs(t, err, &encodeErr)
}

func TestDecodeRoundTrip(t *testing.T) {
	v := strata.List(
		strata.String("019500aa-3b1c-7d11-8000-000000000001"),
		strata.Map(
			strata.Entry("event_type", strata.String("ShipmentCreated")),
			strata.Entry("notes", strata.Null()),
			strata.Entry("occured_at", strata.Int(1_700_000_000_000)),
			strata.Entry("stops", strata.List(strata.Int(1), strata.Int(2))),
		),
	)

	scb, err := strata.Encode(v)
	require.NoError(t, err)

	decoded, err := strata.Decode(scb)
	require.NoError(t, err)
	assert.True(t, strata.Equal(v, decoded))
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: []byte{}},
		{name: "unknown tag", data: []byte{0x7f}},
		{name: "truncated int", data: []byte{0x01, 0, 0}},
		{name: "truncated string", data: []byte{0x02, 0, 0, 0, 5, 'a'}},
		{name: "truncated list count", data: []byte{0x03, 0, 0}},
		{name: "trailing bytes", data: []byte{0x00, 0x00}},
		{name: "map keys out of order", data: []byte{
			0x04, 0, 0, 0, 2,
			0, 0, 0, 1, 'b', 0x00,
			0, 0, 0, 1, 'a', 0x00,
		}},
		{name: "duplicate map keys", data: []byte{
			0x04, 0, 0, 0, 2,
			0, 0, 0, 1, 'a', 0x00,
			0, 0, 0, 1, 'a', 0x00,
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := strata.Decode(tc.data)
			require.Error(t, err)

			var decodeErr *strata.DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}
