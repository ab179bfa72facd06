// Package employeerepo provides data transfer objects and mapping functions
// for employee persistence, including the join rows linking employees to the
// offices they may act in.
package employeerepo

import (
	"time"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/employee"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeDTO represents the database structure for persisting employee aggregates.
type EmployeeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Offices []EmployeeOfficeDTO `gorm:"foreignKey:EmployeeID"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// EmployeeOfficeDTO is one office assignment of an employee.
type EmployeeOfficeDTO struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfficeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for assignment rows.
func (EmployeeOfficeDTO) TableName() string {
	return "employee_offices"
}

// fromDomain converts an employee aggregate to its database representation,
// assignment rows included.
func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	officeIDs := aggregate.OfficeIDs()
	offices := make([]EmployeeOfficeDTO, 0, len(officeIDs))
	for _, officeID := range officeIDs {
		offices = append(offices, EmployeeOfficeDTO{
			EmployeeID: aggregate.ID().Bytes(),
			OfficeID:   officeID.Bytes(),
		})
	}

	return EmployeeDTO{
		ID:       aggregate.ID().Bytes(),
		FullName: aggregate.FullName(),
		Offices:  offices,
	}
}

// toDomain converts a database DTO back to the employee aggregate.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	officeIDs := make([]kernel.UUID, 0, len(dto.Offices))
	for _, row := range dto.Offices {
		officeID, rowErr := kernel.UUIDFromBytes(row.OfficeID[:])
		if rowErr != nil {
			return nil, rowErr
		}
		officeIDs = append(officeIDs, officeID)
	}

	return employee.RestoreEmployee(id, dto.FullName, officeIDs)
}
