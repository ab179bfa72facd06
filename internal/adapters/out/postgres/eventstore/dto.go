// Package eventstore provides the GORM-based implementation of the
// append-only event store. Streams are rows holding the current head hash;
// packages are the sealed, hash-chained entries of a stream.
package eventstore

import (
	"time"

	"github.com/google/uuid"
)

// StreamDTO represents one event stream. HeadHash is the hash of the most
// recently appended package and is nil for an empty stream.
type StreamDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"not null"`
	HeadHash  []byte    `gorm:"type:bytea"`
	CreatedAt time.Time
}

// TableName specifies the database table name for stream entities.
func (StreamDTO) TableName() string {
	return "streams"
}

// PackageDTO represents one sealed package. The content hash is the primary
// key, so an exact duplicate package can never be stored twice. The
// (stream_id, seq) pair is unique: a stream has exactly one package per
// position.
type PackageDTO struct {
	Hash      []byte    `gorm:"type:bytea;primaryKey"`
	StreamID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_packages_stream_seq"`
	PrevHash  []byte    `gorm:"type:bytea"`
	Seq       int64     `gorm:"not null;uniqueIndex:ux_packages_stream_seq"`
	EventType string    `gorm:"not null"`
	SCB       []byte    `gorm:"column:scb;type:bytea;not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}
