package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListClientsQueryHandler retrieves all clients from the database.
// Soft-deleted clients are excluded.
type ListClientsQueryHandler struct {
	db *gorm.DB
}

// NewListClientsQueryHandler creates a handler for the client list query.
func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, email, phone
		FROM clients
		WHERE deleted_at IS NULL
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ClientResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.FullName, &resp.Email, &resp.Phone); err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = clientID

		clients = append(clients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
