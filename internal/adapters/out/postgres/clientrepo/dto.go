// Package clientrepo provides data transfer objects and mapping functions for
// client persistence. Deletes are soft: removed clients keep their rows so
// shipments referencing them stay resolvable.
package clientrepo

import (
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/client"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:       aggregate.ID().Bytes(),
		FullName: aggregate.FullName(),
		Email:    aggregate.Email(),
		Phone:    aggregate.Phone(),
	}
}

// toDomain converts a database DTO back to the client aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.FullName, dto.Email, dto.Phone)
}
