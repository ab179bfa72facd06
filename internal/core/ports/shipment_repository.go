package ports

import (
	"context"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
)

// HistoryRecord is one row of a shipment's denormalized status history.
// FromStatus is nil for the creation record. OfficeID is the office the
// shipment sat in before the transition took effect.
type HistoryRecord struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	FromStatus *shipment.Status
	ToStatus   shipment.Status
	ActorID    kernel.UUID
	OfficeID   *kernel.UUID
	Notes      *string
	OccurredAt time.Time
}

// ShipmentRepository defines the persistence contract for shipment read
// models: the current-state snapshot and the status history. Both are
// projections of the event stream and are written in the same transaction
// as the event itself.
type ShipmentRepository interface {
	// AddSnapshot persists the snapshot row for a newly created shipment.
	AddSnapshot(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateSnapshot persists a changed snapshot (status and office).
	UpdateSnapshot(ctx context.Context, aggregate *shipment.Shipment) error

	// GetSnapshot retrieves the snapshot of a shipment by id.
	GetSnapshot(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// AddHistory persists one history record.
	AddHistory(ctx context.Context, record HistoryRecord) error

	// GetHistory retrieves a shipment's history records ordered by
	// occurrence time ascending.
	GetHistory(ctx context.Context, shipmentID kernel.UUID) ([]HistoryRecord, error)
}
