// Package employee holds the employee aggregate and its office assignments.
// The set of offices assigned to an employee becomes the allowed-office set
// of that employee's actor context.
package employee

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee was not created
// through NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee")

// Employee is a reference aggregate for staff operating shipments.
type Employee struct {
	id        kernel.UUID
	fullName  string
	officeIDs []kernel.UUID

	isConstructed bool
}

// NewEmployee creates an employee with a fresh identifier and no assignments.
func NewEmployee(fullName string) (*Employee, error) {
	return RestoreEmployee(kernel.NewUUID(), fullName, nil)
}

// RestoreEmployee reconstructs an employee from persistence.
func RestoreEmployee(id kernel.UUID, fullName string, officeIDs []kernel.UUID) (*Employee, error) {
	e := &Employee{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setFullName(fullName),
	); err != nil {
		return nil, err
	}

	e.officeIDs = make([]kernel.UUID, len(officeIDs))
	copy(e.officeIDs, officeIDs)
	return e, nil
}

// Validate ensures the Employee was built through a constructor.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.fullName
}

// OfficeIDs returns a copy of the assigned office ids.
func (e *Employee) OfficeIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(e.officeIDs))
	copy(out, e.officeIDs)
	return out
}

// IsAssignedTo reports whether the employee is assigned to an office.
func (e *Employee) IsAssignedTo(officeID kernel.UUID) bool {
	for _, id := range e.officeIDs {
		if id.IsEqual(officeID) {
			return true
		}
	}
	return false
}

// AssignOffice adds an office assignment. Assigning an already assigned
// office is a no-op.
func (e *Employee) AssignOffice(officeID kernel.UUID) error {
	if err := officeID.Validate(); err != nil {
		return err
	}
	if e.IsAssignedTo(officeID) {
		return nil
	}
	e.officeIDs = append(e.officeIDs, officeID)
	return nil
}

// RemoveOffice drops an office assignment. Removing an office that was never
// assigned is a no-op.
func (e *Employee) RemoveOffice(officeID kernel.UUID) {
	for i, id := range e.officeIDs {
		if id.IsEqual(officeID) {
			e.officeIDs = append(e.officeIDs[:i], e.officeIDs[i+1:]...)
			return
		}
	}
}

// Rename updates the employee's display name.
func (e *Employee) Rename(fullName string) error {
	return e.setFullName(fullName)
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	e.fullName = fullName
	return nil
}
