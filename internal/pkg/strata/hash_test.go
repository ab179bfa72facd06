package strata_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusChangedPayload() strata.Value {
	return strata.Map(
		strata.Entry("event_type", strata.String("StatusChanged")),
		strata.Entry("shipment_id", strata.String("shipment-1")),
		strata.Entry("from", strata.String("ACCEPTED")),
		strata.Entry("to", strata.String("PROCESSED")),
		strata.Entry("occurred_at", strata.Int(1_700_000_000_000)),
	)
}

func TestHashValueIsDeterministic(t *testing.T) {
	a, err := strata.HashValue(statusChangedPayload())
	require.NoError(t, err)
	b, err := strata.HashValue(statusChangedPayload())
	require.NoError(t, err)

	assert.Equal(t, a.SCB, b.SCB, "canonical bytes must match for identical values")
	assert.Equal(t, a.Hash, b.Hash, "hash must match for identical values")
	assert.Len(t, a.Hash, strata.HashSize)
}

func TestHashValueIgnoresMapInsertionOrder(t *testing.T) {
	v1 := strata.Map(
		strata.Entry("a", strata.Int(1)),
		strata.Entry("b", strata.Int(2)),
	)
	v2 := strata.Map(
		strata.Entry("b", strata.Int(2)),
		strata.Entry("a", strata.Int(1)),
	)

	a, err := strata.HashValue(v1)
	require.NoError(t, err)
	b, err := strata.HashValue(v2)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
}

func TestHashValueDiffersForDifferentPayloads(t *testing.T) {
	a, err := strata.HashValue(statusChangedPayload())
	require.NoError(t, err)

	other := strata.Map(
		strata.Entry("event_type", strata.String("StatusChanged")),
		strata.Entry("shipment_id", strata.String("shipment-2")),
		strata.Entry("from", strata.String("ACCEPTED")),
		strata.Entry("to", strata.String("PROCESSED")),
		strata.Entry("occurred_at", strata.Int(1_700_000_000_000)),
	)
	b, err := strata.HashValue(other)
	require.NoError(t, err)

	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestHashValueRejectsInvalidValue(t *testing.T) {
	var invalid strata.Value

	_, err := strata.HashValue(invalid)

	var encodeErr *strata.EncodeError
	require.ErrorAs(t, err, &encodeErr)
}
