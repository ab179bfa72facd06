package ports

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/office"
)

// OfficeRepository defines the persistence contract for office aggregates.
// Deletes are soft so historical shipment records keep resolving.
type OfficeRepository interface {
	// Add persists a new office aggregate.
	Add(ctx context.Context, aggregate *office.Office) error

	// Update persists changes to an existing office aggregate.
	Update(ctx context.Context, aggregate *office.Office) error

	// Get retrieves an office by id. Soft-deleted offices are not found.
	Get(ctx context.Context, id kernel.UUID) (*office.Office, error)

	// Delete soft-deletes an office by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
