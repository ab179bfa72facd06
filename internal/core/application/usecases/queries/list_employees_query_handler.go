package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListEmployeesQueryHandler retrieves all employees from the database.
// Soft-deleted employees are excluded.
type ListEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewListEmployeesQueryHandler creates a handler for the employee list query.
func NewListEmployeesQueryHandler(db *gorm.DB) ListEmployeesQueryHandler {
	return ListEmployeesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h ListEmployeesQueryHandler) Handle(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employees := make([]EmployeeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp EmployeeResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.FullName); err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = employeeID

		employees = append(employees, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
