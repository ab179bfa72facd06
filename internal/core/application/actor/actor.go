// Package actor defines the authorization context every use case receives.
// The context is built by the inbound adapter (from whatever credential it
// verified) and treated as an opaque input by the core: use cases read it,
// never mutate it, and carry no credential logic of their own.
package actor

import "github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

// Role is a coarse-grained permission class granted to a user.
type Role string

const (
	// RoleAdmin bypasses office scoping entirely.
	RoleAdmin Role = "admin"

	// RoleEmployee is scoped to the offices listed in AllowedOfficeIDs.
	RoleEmployee Role = "employee"
)

// Context carries the identity and office scope of the caller of a use case.
type Context struct {
	// UserID is the internal user id of the caller.
	UserID kernel.UUID

	// Sub is the external subject the credential was issued for.
	Sub string

	// Roles granted to this user.
	Roles []Role

	// EmployeeID is set when the caller is an employee.
	EmployeeID *kernel.UUID

	// AllowedOfficeIDs are the offices a non-admin caller may act within.
	AllowedOfficeIDs []kernel.UUID
}

// IsAdmin reports whether the caller holds the admin role.
func (c *Context) IsAdmin() bool {
	return c.hasRole(RoleAdmin)
}

// IsEmployee reports whether the caller holds the employee role.
func (c *Context) IsEmployee() bool {
	return c.hasRole(RoleEmployee)
}

// CanActInOffice reports whether the caller may operate on entities in the
// given office. Admins may act anywhere.
func (c *Context) CanActInOffice(officeID kernel.UUID) bool {
	if c.IsAdmin() {
		return true
	}
	for _, id := range c.AllowedOfficeIDs {
		if id.IsEqual(officeID) {
			return true
		}
	}
	return false
}

func (c *Context) hasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
