package ports

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/employee"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employee aggregates
// together with their office assignments. Update reconciles the assignment
// rows against the aggregate's current office set.
type EmployeeRepository interface {
	// Add persists a new employee aggregate with its office assignments.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Update persists changes to an existing employee aggregate, adding
	// and removing assignment rows to match the aggregate.
	Update(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee by id with all office assignments loaded.
	// Soft-deleted employees are not found.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// Delete soft-deletes an employee by id.
	Delete(ctx context.Context, id kernel.UUID) error
}
