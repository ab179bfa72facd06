package officerepo

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/office"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository implements OfficeRepository using GORM.
type GormOfficeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfficeRepository creates a new GORM office repository.
func NewGormOfficeRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficeRepository {
	return &GormOfficeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new office to the database.
func (r *GormOfficeRepository) Add(ctx context.Context, aggregate *office.Office) error {
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

// Update saves an existing office to the database.
func (r *GormOfficeRepository) Update(ctx context.Context, aggregate *office.Office) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfficeDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Address").
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

// Get retrieves an office by ID. Soft-deleted offices are not found.
func (r *GormOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("office", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes an office by ID.
func (r *GormOfficeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OfficeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("office", id.String())
	}

	return nil
}
