package shipmentrepo

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/core/ports"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddSnapshot saves the snapshot row for a newly created shipment.
func (r *GormShipmentRepository) AddSnapshot(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateSnapshot saves a changed snapshot to the database.
func (r *GormShipmentRepository) UpdateSnapshot(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "CurrentOfficeID", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetSnapshot retrieves a shipment snapshot by ID.
func (r *GormShipmentRepository) GetSnapshot(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddHistory saves one status-history row.
func (r *GormShipmentRepository) AddHistory(ctx context.Context, record ports.HistoryRecord) error {
	dto := historyFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHistory retrieves a shipment's history rows ordered by occurrence time.
func (r *GormShipmentRepository) GetHistory(ctx context.Context, shipmentID kernel.UUID) ([]ports.HistoryRecord, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]ports.HistoryRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
