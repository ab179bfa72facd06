package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentHistoryQueryHandler retrieves a shipment's history rows.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for history queries.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the query. Rows come back in occurrence order ascending,
// so the creation row is always first.
func (h GetShipmentHistoryQueryHandler) Handle(ctx context.Context, query GetShipmentHistoryQuery) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			office_id,
			notes,
			occurred_at
		FROM shipment_status_history
		WHERE shipment_id = ?
		ORDER BY occurred_at ASC
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		var actorID uuid.UUID
		var officeID *uuid.UUID

		if err = rows.Scan(
			&entry.FromStatus,
			&entry.ToStatus,
			&actorID,
			&officeID,
			&entry.Notes,
			&entry.OccurredAt,
		); err != nil {
			return nil, err
		}

		actor, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ActorID = actor

		if officeID != nil {
			office, officeErr := kernel.UUIDFromBytes((*officeID)[:])
			if officeErr != nil {
				return nil, officeErr
			}
			entry.OfficeID = &office
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
