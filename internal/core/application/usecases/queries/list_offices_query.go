package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrListOfficesQueryIsNotConstructed = errors.New(
	"ListOfficesQuery must be created via NewListOfficesQuery constructor",
)

// ListOfficesQuery retrieves all non-deleted offices.
type ListOfficesQuery struct {
	guard guard.ConstructorGuard
}

// NewListOfficesQuery creates a query to retrieve all offices.
func NewListOfficesQuery() ListOfficesQuery {
	return ListOfficesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOfficesQuery) Validate() error {
	return q.guard.Validate(ErrListOfficesQueryIsNotConstructed)
}

// OfficeResponse is the office read model.
type OfficeResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
}
