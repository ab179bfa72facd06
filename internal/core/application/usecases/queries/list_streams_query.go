package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrListStreamsQueryIsNotConstructed = errors.New(
	"ListStreamsQuery must be created via NewListStreamsQuery constructor",
)

// ListStreamsQuery retrieves the ids of all event streams, mainly for the
// periodic chain audit sweep.
type ListStreamsQuery struct {
	guard guard.ConstructorGuard
}

// NewListStreamsQuery creates a query to retrieve all stream ids.
func NewListStreamsQuery() ListStreamsQuery {
	return ListStreamsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStreamsQuery) Validate() error {
	return q.guard.Validate(ErrListStreamsQueryIsNotConstructed)
}

// StreamResponse identifies one event stream.
type StreamResponse struct {
	ID   kernel.UUID
	Kind string
}
