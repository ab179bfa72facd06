package commands_test

import (
	"testing"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand("Ada Ivanova", "ada@example.com", "")
	require.NoError(t, err)

	repo := new(MockClientRepository)
	uow := new(MockClientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*client.Client")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	id, err := h.Handle(ctx, adminActor(), cmd)
	require.NoError(t, err)
	require.NoError(t, id.Validate())
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_EmployeeForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand("Ada Ivanova", "ada@example.com", "")
	require.NoError(t, err)

	factory := new(MockClientUoWFactory)
	h := commands.NewCreateClientCommandHandler(factory)

	_, err = h.Handle(ctx, employeeActor(), cmd)
	require.ErrorIs(t, err, commands.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateClientCommand_RequiresNameAndEmail(t *testing.T) {
	_, err := commands.NewCreateClientCommand("", "ada@example.com", "")
	require.Error(t, err)

	_, err = commands.NewCreateClientCommand("Ada Ivanova", "", "")
	require.Error(t, err)
}
