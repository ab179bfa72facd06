package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery retrieves all non-deleted clients.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewListClientsQuery creates a query to retrieve all clients.
func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

// ClientResponse is the client read model.
type ClientResponse struct {
	ID       kernel.UUID
	FullName string
	Email    string
	Phone    string
}
