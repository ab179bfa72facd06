// Package officerepo provides data transfer objects and mapping functions for
// office persistence. Offices are soft-deleted so historical shipment records
// keep resolving.
package officerepo

import (
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/office"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfficeDTO represents the database structure for persisting office aggregates.
type OfficeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for office entities.
func (OfficeDTO) TableName() string {
	return "offices"
}

// fromDomain converts an office aggregate to its database representation.
func fromDomain(aggregate *office.Office) OfficeDTO {
	return OfficeDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
	}
}

// toDomain converts a database DTO back to the office aggregate.
func toDomain(dto OfficeDTO) (*office.Office, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return office.RestoreOffice(id, dto.Name, dto.Address)
}
