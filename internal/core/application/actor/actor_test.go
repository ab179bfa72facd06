package actor_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoles(t *testing.T) {
	admin := actor.Context{UserID: kernel.NewUUID(), Roles: []actor.Role{actor.RoleAdmin}}
	employee := actor.Context{UserID: kernel.NewUUID(), Roles: []actor.Role{actor.RoleEmployee}}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsEmployee())
	assert.True(t, employee.IsEmployee())
	assert.False(t, employee.IsAdmin())
}

func TestCanActInOffice(t *testing.T) {
	officeA := kernel.NewUUID()
	officeB := kernel.NewUUID()

	t.Run("admin may act anywhere", func(t *testing.T) {
		admin := actor.Context{UserID: kernel.NewUUID(), Roles: []actor.Role{actor.RoleAdmin}}
		assert.True(t, admin.CanActInOffice(officeA))
	})

	t.Run("employee is scoped to allowed offices", func(t *testing.T) {
		employee := actor.Context{
			UserID:           kernel.NewUUID(),
			Roles:            []actor.Role{actor.RoleEmployee},
			AllowedOfficeIDs: []kernel.UUID{officeA},
		}
		assert.True(t, employee.CanActInOffice(officeA))
		assert.False(t, employee.CanActInOffice(officeB))
	})

	t.Run("no roles means no access", func(t *testing.T) {
		nobody := actor.Context{UserID: kernel.NewUUID()}
		assert.False(t, nobody.CanActInOffice(officeA))
	})
}
