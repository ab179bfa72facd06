package strata_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSortsEntriesOnConstruction(t *testing.T) {
	v := strata.Map(
		strata.Entry("to_status", strata.String("PROCESSED")),
		strata.Entry("event_type", strata.String("StatusChanged")),
		strata.Entry("from_status", strata.String("ACCEPTED")),
	)

	assert.Equal(t, []string{"event_type", "from_status", "to_status"}, v.Keys())
}

func TestMapInsertionOrderDoesNotAffectEquality(t *testing.T) {
	v1 := strata.Map(
		strata.Entry("a", strata.Int(1)),
		strata.Entry("b", strata.Int(2)),
		strata.Entry("c", strata.Null()),
	)
	v2 := strata.Map(
		strata.Entry("c", strata.Null()),
		strata.Entry("a", strata.Int(1)),
		strata.Entry("b", strata.Int(2)),
	)

	assert.True(t, strata.Equal(v1, v2))
}

func TestMapDuplicateKeysLastWriteWins(t *testing.T) {
	v := strata.Map(
		strata.Entry("status", strata.String("NEW")),
		strata.Entry("status", strata.String("ACCEPTED")),
	)

	require.Equal(t, 1, v.Len())
	got, ok := v.Get("status")
	require.True(t, ok)
	assert.Equal(t, "ACCEPTED", got.Text())
}

func TestGetMissingKey(t *testing.T) {
	v := strata.Map(strata.Entry("a", strata.Int(1)))

	_, ok := v.Get("b")
	assert.False(t, ok)
}

func TestEqualDistinguishesKinds(t *testing.T) {
	assert.False(t, strata.Equal(strata.Int(0), strata.Null()))
	assert.False(t, strata.Equal(strata.String("1"), strata.Int(1)))
	assert.False(t, strata.Equal(strata.List(), strata.Map()))
}

func TestEqualNestedValues(t *testing.T) {
	build := func() strata.Value {
		return strata.List(
			strata.String("shipment-1"),
			strata.Map(
				strata.Entry("notes", strata.Null()),
				strata.Entry("occured_at", strata.Int(1_700_000_000_000)),
			),
		)
	}

	assert.True(t, strata.Equal(build(), build()))

	other := strata.List(
		strata.String("shipment-2"),
		strata.Map(
			strata.Entry("notes", strata.Null()),
			strata.Entry("occured_at", strata.Int(1_700_000_000_000)),
		),
	)
	assert.False(t, strata.Equal(build(), other))
}

func TestZeroValueIsInvalid(t *testing.T) {
	var v strata.Value
	assert.Equal(t, strata.KindInvalid, v.Kind())
}
