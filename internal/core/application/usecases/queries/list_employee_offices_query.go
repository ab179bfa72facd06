package queries

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/guard"
)

var ErrListEmployeeOfficesQueryIsNotConstructed = errors.New(
	"ListEmployeeOfficesQuery must be created via NewListEmployeeOfficesQuery constructor",
)

// ListEmployeeOfficesQuery retrieves the offices assigned to one employee.
// The result is the employee's allowed-office scope, so the authentication
// middleware runs this query when building the actor context.
type ListEmployeeOfficesQuery struct {
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListEmployeeOfficesQuery creates a query for an employee's assignments.
func NewListEmployeeOfficesQuery(employeeID kernel.UUID) (ListEmployeeOfficesQuery, error) {
	if err := employeeID.Validate(); err != nil {
		return ListEmployeeOfficesQuery{}, err
	}

	return ListEmployeeOfficesQuery{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListEmployeeOfficesQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeeOfficesQueryIsNotConstructed)
}

// EmployeeID returns the employee whose assignments are requested.
func (q ListEmployeeOfficesQuery) EmployeeID() kernel.UUID {
	return q.employeeID
}
