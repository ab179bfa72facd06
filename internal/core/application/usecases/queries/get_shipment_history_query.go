package queries

import (
	"errors"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves the denormalized status history of one
// shipment in occurrence order.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's history rows.
func NewGetShipmentHistoryQuery(shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is requested.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// HistoryEntryResponse is one row of a shipment's status history read model.
// FromStatus is nil for the creation row.
type HistoryEntryResponse struct {
	FromStatus *string
	ToStatus   string
	ActorID    kernel.UUID
	OfficeID   *kernel.UUID
	Notes      *string
	OccurredAt time.Time
}
