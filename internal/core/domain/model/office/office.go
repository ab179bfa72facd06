// Package office holds the office aggregate: the physical locations shipments
// sit in and employees are scoped to. Authorization for non-admin actors is
// expressed entirely in terms of office ids.
package office

import (
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"
)

// ErrOfficeIsNotConstructed is returned when an Office was not created through
// NewOffice or RestoreOffice.
var ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice or RestoreOffice")

// Office is a reference aggregate for one physical location.
type Office struct {
	id      kernel.UUID
	name    string
	address string

	isConstructed bool
}

// NewOffice creates an office with a fresh identifier.
func NewOffice(name, address string) (*Office, error) {
	return RestoreOffice(kernel.NewUUID(), name, address)
}

// RestoreOffice reconstructs an office from persistence.
func RestoreOffice(id kernel.UUID, name, address string) (*Office, error) {
	o := &Office{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
	); err != nil {
		return nil, err
	}

	o.address = address
	return o, nil
}

// Validate ensures the Office was built through a constructor.
func (o *Office) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfficeIsNotConstructed
	}
	return nil
}

// ID returns the office identifier.
func (o *Office) ID() kernel.UUID {
	return o.id
}

// Name returns the office's display name.
func (o *Office) Name() string {
	return o.name
}

// Address returns the office's street address, possibly empty.
func (o *Office) Address() string {
	return o.address
}

// Update changes the office's name and address.
func (o *Office) Update(name, address string) error {
	if err := o.setName(name); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Office) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Office) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}
