package queries

import (
	"context"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListEmployeeOfficesQueryHandler retrieves an employee's office assignments.
type ListEmployeeOfficesQueryHandler struct {
	db *gorm.DB
}

// NewListEmployeeOfficesQueryHandler creates a handler for assignment queries.
func NewListEmployeeOfficesQueryHandler(db *gorm.DB) ListEmployeeOfficesQueryHandler {
	return ListEmployeeOfficesQueryHandler{db: db}
}

// Handle executes the query and returns the assigned office ids.
func (h ListEmployeeOfficesQueryHandler) Handle(ctx context.Context, query ListEmployeeOfficesQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	officeIDs := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT office_id
		FROM employee_offices
		WHERE employee_id = ?
		ORDER BY office_id
	`, query.EmployeeID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		officeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		officeIDs = append(officeIDs, officeID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return officeIDs, nil
}
