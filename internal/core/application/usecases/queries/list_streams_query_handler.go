package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStreamsQueryHandler retrieves all stream ids from the database.
type ListStreamsQueryHandler struct {
	db *gorm.DB
}

// NewListStreamsQueryHandler creates a handler for the stream list query.
func NewListStreamsQueryHandler(db *gorm.DB) ListStreamsQueryHandler {
	return ListStreamsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListStreamsQueryHandler) Handle(ctx context.Context, query ListStreamsQuery) ([]StreamResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	streams := make([]StreamResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind FROM streams ORDER BY created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var kind string
		if err = rows.Scan(&id, &kind); err != nil {
			return nil, err
		}

		streamID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		streams = append(streams, StreamResponse{ID: streamID, Kind: kind})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return streams, nil
}
