package eventstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/ports"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEventStore implements ports.EventStore using GORM.
//
// Every payload is wrapped in a two-element list [stream_id, payload] before
// encoding, so the content hash is scoped to its stream: byte-identical
// payloads appended to different streams still produce different hashes.
type GormEventStore struct {
	db *gorm.DB
}

// NewGormEventStore creates a new GORM event store.
func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

// EnsureStream creates the stream row if it does not exist. An existing
// stream is left untouched, including its kind.
func (s *GormEventStore) EnsureStream(ctx context.Context, streamID kernel.UUID, kind string) error {
	if err := streamID.Validate(); err != nil {
		return err
	}

	dto := StreamDTO{ID: streamID.Bytes(), Kind: kind}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Append seals a new package at the head of the stream.
//
// The stream row is locked with SELECT ... FOR UPDATE, so concurrent appends
// to one stream serialize and each package links to the real previous head.
// The package insert and the head update happen in one transaction; a failure
// anywhere leaves the stream exactly as it was.
func (s *GormEventStore) Append(ctx context.Context, streamID kernel.UUID, eventType string, value strata.Value) ([]byte, error) {
	if err := streamID.Validate(); err != nil {
		return nil, err
	}

	scoped := strata.List(strata.String(streamID.String()), value)
	hashed, err := strata.HashValue(scoped)
	if err != nil {
		return nil, err
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stream StreamDTO
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&stream, "id = ?", streamID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrStreamNotFound
			}
			return err
		}

		var nextSeq int64
		if err := tx.Model(&PackageDTO{}).
			Where("stream_id = ?", streamID.Bytes()).
			Select("COALESCE(MAX(seq), 0) + 1").
			Scan(&nextSeq).Error; err != nil {
			return err
		}

		pkg := PackageDTO{
			Hash:      hashed.Hash,
			StreamID:  streamID.Bytes(),
			PrevHash:  stream.HeadHash,
			Seq:       nextSeq,
			EventType: eventType,
			SCB:       hashed.SCB,
		}
		if err := tx.Create(&pkg).Error; err != nil {
			return err
		}

		return tx.Model(&StreamDTO{}).
			Where("id = ?", streamID.Bytes()).
			Update("head_hash", hashed.Hash).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return hashed.Hash, nil
}

// ReadOrdered returns the stream's packages in ascending sequence order with
// payloads decoded and unwrapped from their stream-scoping envelope.
func (s *GormEventStore) ReadOrdered(ctx context.Context, streamID kernel.UUID) ([]ports.StreamPackage, error) {
	if err := streamID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := s.db.WithContext(ctx).
		Where("stream_id = ?", streamID.Bytes()).
		Order("seq ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]ports.StreamPackage, 0, len(dtos))
	for _, dto := range dtos {
		payload, err := unwrapScoped(dto.SCB)
		if err != nil {
			return nil, fmt.Errorf("package seq %d of stream %s: %w", dto.Seq, streamID.String(), err)
		}

		packages = append(packages, ports.StreamPackage{
			Seq:       dto.Seq,
			EventType: dto.EventType,
			Hash:      dto.Hash,
			PrevHash:  dto.PrevHash,
			Value:     payload,
		})
	}

	return packages, nil
}

// unwrapScoped decodes stored canonical bytes and strips the
// [stream_id, payload] envelope added at append time.
func unwrapScoped(scb []byte) (strata.Value, error) {
	scoped, err := strata.Decode(scb)
	if err != nil {
		return strata.Value{}, err
	}
	if scoped.Kind() != strata.KindList || scoped.Len() != 2 {
		return strata.Value{}, fmt.Errorf("stored bytes are not a scoped package envelope")
	}
	return scoped.Item(1), nil
}
