package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrListEmployeesQueryIsNotConstructed = errors.New(
	"ListEmployeesQuery must be created via NewListEmployeesQuery constructor",
)

// ListEmployeesQuery retrieves all non-deleted employees.
type ListEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewListEmployeesQuery creates a query to retrieve all employees.
func NewListEmployeesQuery() ListEmployeesQuery {
	return ListEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeesQueryIsNotConstructed)
}

// EmployeeResponse is the employee read model.
type EmployeeResponse struct {
	ID       kernel.UUID
	FullName string
}
