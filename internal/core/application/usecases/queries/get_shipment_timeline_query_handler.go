package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/ports"
)

// GetShipmentTimelineQueryHandler retrieves a shipment's event timeline by
// delegating to the event store. Ordering is total and stable: seq is unique
// and gapless per stream.
type GetShipmentTimelineQueryHandler struct {
	store ports.EventStore
}

// NewGetShipmentTimelineQueryHandler creates a handler for timeline queries.
func NewGetShipmentTimelineQueryHandler(store ports.EventStore) GetShipmentTimelineQueryHandler {
	return GetShipmentTimelineQueryHandler{store: store}
}

// Handle executes the query. An unknown shipment yields an empty timeline.
func (h GetShipmentTimelineQueryHandler) Handle(ctx context.Context, query GetShipmentTimelineQuery) ([]TimelineEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages, err := h.store.ReadOrdered(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}

	entries := make([]TimelineEntryResponse, 0, len(packages))
	for _, pkg := range packages {
		entries = append(entries, TimelineEntryResponse{
			Seq:       pkg.Seq,
			EventType: pkg.EventType,
			Hash:      pkg.Hash,
			PrevHash:  pkg.PrevHash,
			Value:     pkg.Value,
		})
	}

	return entries, nil
}
