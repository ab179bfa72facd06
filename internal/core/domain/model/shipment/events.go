package shipment

import (
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"
)

// StreamKind is the stream kind shipments are recorded under. It doubles as
// the event type of the stream-init marker package at seq 1.
const StreamKind = "shipment"

// Event type tags recorded on packages.
const (
	EventTypeShipmentCreated = "ShipmentCreated"
	EventTypeStatusChanged   = "StatusChanged"
)

// ActorRef identifies the actor that caused an event.
type ActorRef struct {
	UserID kernel.UUID
}

// ShipmentCreated is the fact recorded when a shipment enters the system.
type ShipmentCreated struct {
	ShipmentID kernel.UUID
	Status     Status
	Actor      ActorRef
	OfficeID   *kernel.UUID
	// OccurredAt is a unix timestamp in milliseconds, informational only.
	OccurredAt int64
	Notes      *string
}

// ToValue builds the canonical payload for the creation fact.
func (e ShipmentCreated) ToValue() strata.Value {
	return strata.Map(
		strata.Entry("event_type", strata.String(EventTypeShipmentCreated)),
		strata.Entry("shipment_id", strata.String(e.ShipmentID.String())),
		strata.Entry("status", strata.String(e.Status.String())),
		strata.Entry("actor_user_id", strata.String(e.Actor.UserID.String())),
		strata.Entry("office_id", optionalUUID(e.OfficeID)),
		strata.Entry("occured_at", strata.Int(e.OccurredAt)),
		strata.Entry("notes", optionalString(e.Notes)),
	)
}

// StatusChanged is the fact recorded on every lifecycle transition.
type StatusChanged struct {
	ShipmentID   kernel.UUID
	FromStatus   Status
	ToStatus     Status
	Actor        ActorRef
	FromOfficeID *kernel.UUID
	ToOfficeID   *kernel.UUID
	// OccurredAt is a unix timestamp in milliseconds, informational only.
	OccurredAt int64
	Notes      *string
}

// ToValue builds the canonical payload for the transition fact.
func (e StatusChanged) ToValue() strata.Value {
	return strata.Map(
		strata.Entry("event_type", strata.String(EventTypeStatusChanged)),
		strata.Entry("shipment_id", strata.String(e.ShipmentID.String())),
		strata.Entry("from_status", strata.String(e.FromStatus.String())),
		strata.Entry("to_status", strata.String(e.ToStatus.String())),
		strata.Entry("actor_user_id", strata.String(e.Actor.UserID.String())),
		strata.Entry("from_office_id", optionalUUID(e.FromOfficeID)),
		strata.Entry("to_office_id", optionalUUID(e.ToOfficeID)),
		strata.Entry("occured_at", strata.Int(e.OccurredAt)),
		strata.Entry("notes", optionalString(e.Notes)),
	)
}

func optionalUUID(id *kernel.UUID) strata.Value {
	if id == nil {
		return strata.Null()
	}
	return strata.String(id.String())
}

func optionalString(s *string) strata.Value {
	if s == nil {
		return strata.Null()
	}
	return strata.String(*s)
}
