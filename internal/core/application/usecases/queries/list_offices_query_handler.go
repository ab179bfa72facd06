package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOfficesQueryHandler retrieves all offices from the database.
// Soft-deleted offices are excluded.
type ListOfficesQueryHandler struct {
	db *gorm.DB
}

// NewListOfficesQueryHandler creates a handler for the office list query.
func NewListOfficesQueryHandler(db *gorm.DB) ListOfficesQueryHandler {
	return ListOfficesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h ListOfficesQueryHandler) Handle(ctx context.Context, query ListOfficesQuery) ([]OfficeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offices := make([]OfficeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address
		FROM offices
		WHERE deleted_at IS NULL
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OfficeResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Address); err != nil {
			return nil, err
		}

		officeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = officeID

		offices = append(offices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offices, nil
}
