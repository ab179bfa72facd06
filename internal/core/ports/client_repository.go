package ports

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/client"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
// Deletes are soft: a deleted client disappears from reads but its rows
// remain for shipments that reference it.
type ClientRepository interface {
	// Add persists a new client aggregate.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by id. Soft-deleted clients are not found.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// Delete soft-deletes a client by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
