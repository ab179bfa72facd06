package shipment

import (
	"errors"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the current-state snapshot of one tracked shipment: its status
// and the office it currently sits in. It is overwritten on every committed
// transition and always reflects the latest one; the full history lives in
// the status history rows and the shipment's event stream.
type Shipment struct {
	id              kernel.UUID
	clientID        kernel.UUID
	status          Status
	currentOfficeID *kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewShipment creates a snapshot for a freshly registered shipment in New status.
func NewShipment(id, clientID kernel.UUID, currentOfficeID *kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setCurrentOfficeID(currentOfficeID),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s.createdAt = now
	s.updatedAt = now
	return s, nil
}

// RestoreShipment reconstructs a snapshot from persistence.
func RestoreShipment(
	id, clientID kernel.UUID,
	status Status,
	currentOfficeID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setClientID(clientID),
		s.setStatus(status),
		s.setCurrentOfficeID(currentOfficeID),
	); err != nil {
		return nil, err
	}

	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier, which is also its stream id.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ClientID returns the owning client.
func (s *Shipment) ClientID() kernel.UUID {
	return s.clientID
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CurrentOfficeID returns the office the shipment currently sits in,
// or nil when it has none recorded.
func (s *Shipment) CurrentOfficeID() *kernel.UUID {
	return s.currentOfficeID
}

// CreatedAt returns the snapshot creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last snapshot write time.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// OfficeChangedBy reports whether a requested target office counts as an
// office change against the current one. A request carrying no office while
// the shipment sits in one (or the reverse) is a change.
func (s *Shipment) OfficeChangedBy(toOfficeID *kernel.UUID) bool {
	return !uuidPtrEqual(toOfficeID, s.currentOfficeID)
}

// ChangeStatus applies a lifecycle transition to the snapshot.
//
// The transition is validated by ValidateTransition with the office-change
// flag derived from the requested target office. On a transition into
// InTransit the shipment moves to the target office, keeping the current one
// when no target is given; every other transition leaves the office untouched
// (terminal transitions never clear it).
func (s *Shipment) ChangeStatus(to Status, toOfficeID *kernel.UUID) error {
	if err := ValidateTransition(s.status, to, s.OfficeChangedBy(toOfficeID)); err != nil {
		return err
	}

	s.status = to
	if to == InTransit && toOfficeID != nil {
		id := *toOfficeID
		s.currentOfficeID = &id
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.clientID = id
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCurrentOfficeID(id *kernel.UUID) error {
	if id == nil {
		s.currentOfficeID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	copied := *id
	s.currentOfficeID = &copied
	return nil
}

func uuidPtrEqual(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}
