package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/ports"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventStore is a mock implementation of ports.EventStore.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) EnsureStream(ctx context.Context, streamID kernel.UUID, kind string) error {
	args := m.Called(ctx, streamID, kind)
	return args.Error(0)
}

func (m *MockEventStore) Append(ctx context.Context, streamID kernel.UUID, eventType string, value strata.Value) ([]byte, error) {
	args := m.Called(ctx, streamID, eventType, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockEventStore) ReadOrdered(ctx context.Context, streamID kernel.UUID) ([]ports.StreamPackage, error) {
	args := m.Called(ctx, streamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.StreamPackage), args.Error(1)
}

func TestGetShipmentTimelineQueryHandler_Success(t *testing.T) {
	shipmentID := kernel.NewUUID()
	payload := strata.Map(strata.Entry("event_type", strata.String("ShipmentCreated")))

	store := new(MockEventStore)
	store.On("ReadOrdered", mock.Anything, shipmentID).Return([]ports.StreamPackage{
		{Seq: 1, EventType: "shipment", Hash: []byte{0x01}, PrevHash: nil, Value: strata.Map()},
		{Seq: 2, EventType: "ShipmentCreated", Hash: []byte{0x02}, PrevHash: []byte{0x01}, Value: payload},
	}, nil).Once()

	handler := queries.NewGetShipmentTimelineQueryHandler(store)
	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	require.NoError(t, err)

	entries, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, "shipment", entries[0].EventType)
	assert.Nil(t, entries[0].PrevHash)
	assert.Equal(t, int64(2), entries[1].Seq)
	assert.Equal(t, []byte{0x01}, entries[1].PrevHash)
	assert.True(t, strata.Equal(payload, entries[1].Value))

	store.AssertExpectations(t)
}

func TestGetShipmentTimelineQueryHandler_EmptyStream(t *testing.T) {
	shipmentID := kernel.NewUUID()

	store := new(MockEventStore)
	store.On("ReadOrdered", mock.Anything, shipmentID).Return([]ports.StreamPackage{}, nil).Once()

	handler := queries.NewGetShipmentTimelineQueryHandler(store)
	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	require.NoError(t, err)

	entries, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetShipmentTimelineQueryHandler_StoreError(t *testing.T) {
	shipmentID := kernel.NewUUID()
	storeErr := errors.New("read failed")

	store := new(MockEventStore)
	store.On("ReadOrdered", mock.Anything, shipmentID).Return(nil, storeErr).Once()

	handler := queries.NewGetShipmentTimelineQueryHandler(store)
	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetShipmentTimelineQueryHandler_UnconstructedQuery(t *testing.T) {
	handler := queries.NewGetShipmentTimelineQueryHandler(new(MockEventStore))

	_, err := handler.Handle(context.Background(), queries.GetShipmentTimelineQuery{})
	assert.ErrorIs(t, err, queries.ErrGetShipmentTimelineQueryIsNotConstructed)
}
