package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"
)

var ErrGetShipmentTimelineQueryIsNotConstructed = errors.New(
	"GetShipmentTimelineQuery must be created via NewGetShipmentTimelineQuery constructor",
)

// GetShipmentTimelineQuery retrieves the full event timeline of one shipment
// from its stream, in append order.
type GetShipmentTimelineQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentTimelineQuery creates a query for a shipment's event timeline.
func NewGetShipmentTimelineQuery(shipmentID kernel.UUID) (GetShipmentTimelineQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentTimelineQuery{}, err
	}

	return GetShipmentTimelineQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTimelineQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose timeline is requested.
func (q GetShipmentTimelineQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// TimelineEntryResponse is one sealed package of the stream: its position,
// type, chain links and decoded payload.
type TimelineEntryResponse struct {
	Seq       int64
	EventType string
	Hash      []byte
	PrevHash  []byte
	Value     strata.Value
}
