// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment read-model persistence: the current-state snapshot and the
// denormalized status history. Both are projections of the shipment's event
// stream and are only ever written in the same transaction as an append.
package shipmentrepo

import (
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/core/ports"

	"github.com/google/uuid"
)

// ShipmentDTO represents the snapshot row for one shipment: its latest status
// and current office. Status is stored as its wire string.
type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"not null"`
	CurrentOfficeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for shipment snapshots.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// HistoryDTO represents one status-history row. FromStatus is null for the
// creation row; OfficeID records the office the shipment sat in before the
// transition took effect.
type HistoryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus *string    `gorm:""`
	ToStatus   string     `gorm:"not null"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null"`
	OfficeID   *uuid.UUID `gorm:"type:uuid"`
	Notes      *string
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for history rows.
func (HistoryDTO) TableName() string {
	return "shipment_status_history"
}

// fromDomain converts a shipment snapshot aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var officeID *uuid.UUID
	if id := aggregate.CurrentOfficeID(); id != nil {
		raw := id.Bytes()
		officeID = &raw
	}

	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		Status:          aggregate.Status().String(),
		CurrentOfficeID: officeID,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a snapshot DTO back to the domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	officeID, err := optionalUUIDFromBytes(dto.CurrentOfficeID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, clientID, status, officeID, dto.CreatedAt, dto.UpdatedAt)
}

// historyFromDomain converts a history record to its database representation.
func historyFromDomain(record ports.HistoryRecord) HistoryDTO {
	var fromStatus *string
	if record.FromStatus != nil {
		s := record.FromStatus.String()
		fromStatus = &s
	}

	var officeID *uuid.UUID
	if record.OfficeID != nil {
		raw := record.OfficeID.Bytes()
		officeID = &raw
	}

	return HistoryDTO{
		ID:         record.ID.Bytes(),
		ShipmentID: record.ShipmentID.Bytes(),
		FromStatus: fromStatus,
		ToStatus:   record.ToStatus.String(),
		ActorID:    record.ActorID.Bytes(),
		OfficeID:   officeID,
		Notes:      record.Notes,
		OccurredAt: record.OccurredAt,
	}
}

// historyToDomain converts a history DTO back to a history record.
func historyToDomain(dto HistoryDTO) (ports.HistoryRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.HistoryRecord{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return ports.HistoryRecord{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return ports.HistoryRecord{}, err
	}

	var fromStatus *shipment.Status
	if dto.FromStatus != nil {
		s, statusErr := shipment.StatusFromString(*dto.FromStatus)
		if statusErr != nil {
			return ports.HistoryRecord{}, statusErr
		}
		fromStatus = &s
	}

	toStatus, err := shipment.StatusFromString(dto.ToStatus)
	if err != nil {
		return ports.HistoryRecord{}, err
	}

	officeID, err := optionalUUIDFromBytes(dto.OfficeID)
	if err != nil {
		return ports.HistoryRecord{}, err
	}

	return ports.HistoryRecord{
		ID:         id,
		ShipmentID: shipmentID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ActorID:    actorID,
		OfficeID:   officeID,
		Notes:      dto.Notes,
		OccurredAt: dto.OccurredAt,
	}, nil
}

func optionalUUIDFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
