package http

import (
	"net/http"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ClientRequest is the body of client create and update calls.
type ClientRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// OfficeRequest is the body of office create and update calls.
type OfficeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// EmployeeRequest is the body of employee create and update calls.
type EmployeeRequest struct {
	FullName string `json:"full_name"`
}

// ClientResponse is the wire form of the client read model.
type ClientResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// OfficeResponse is the wire form of the office read model.
type OfficeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// EmployeeResponse is the wire form of the employee read model.
type EmployeeResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	var request ClientRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(request.FullName, request.Email, request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	clientID, err := s.handlers.CreateClient.Handle(ctx.Request().Context(), act, cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: clientID.String()})
}

// GetClients handles GET /api/v1/clients.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.handlers.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = ClientResponse{
			ID:       c.ID.String(),
			FullName: c.FullName,
			Email:    c.Email,
			Phone:    c.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	var request ClientRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, request.FullName, request.Email, request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateClient.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteClient handles DELETE /api/v1/clients/:id.
func (s *Server) DeleteClient(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	cmd, err := commands.NewDeleteClientCommand(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteClient.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOffice handles POST /api/v1/offices.
func (s *Server) CreateOffice(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	var request OfficeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOfficeCommand(request.Name, request.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	officeID, err := s.handlers.CreateOffice.Handle(ctx.Request().Context(), act, cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: officeID.String()})
}

// GetOffices handles GET /api/v1/offices.
func (s *Server) GetOffices(ctx echo.Context) error {
	offices, err := s.handlers.ListOffices.Handle(ctx.Request().Context(), queries.NewListOfficesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OfficeResponse, len(offices))
	for i, o := range offices {
		response[i] = OfficeResponse{
			ID:      o.ID.String(),
			Name:    o.Name,
			Address: o.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOffice handles PUT /api/v1/offices/:id.
func (s *Server) UpdateOffice(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	officeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid office id")
	}

	var request OfficeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOfficeCommand(officeID, request.Name, request.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOffice.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOffice handles DELETE /api/v1/offices/:id.
func (s *Server) DeleteOffice(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	officeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid office id")
	}

	cmd, err := commands.NewDeleteOfficeCommand(officeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteOffice.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	var request EmployeeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateEmployeeCommand(request.FullName)
	if err != nil {
		return respondError(ctx, err)
	}

	employeeID, err := s.handlers.CreateEmployee.Handle(ctx.Request().Context(), act, cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: employeeID.String()})
}

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(ctx echo.Context) error {
	employees, err := s.handlers.ListEmployees.Handle(ctx.Request().Context(), queries.NewListEmployeesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		response[i] = EmployeeResponse{
			ID:       e.ID.String(),
			FullName: e.FullName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateEmployee handles PUT /api/v1/employees/:id.
func (s *Server) UpdateEmployee(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	var request EmployeeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateEmployeeCommand(employeeID, request.FullName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateEmployee.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	cmd, err := commands.NewDeleteEmployeeCommand(employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteEmployee.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEmployeeOffices handles GET /api/v1/employees/:id/offices.
func (s *Server) GetEmployeeOffices(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid employee id")
	}

	query, err := queries.NewListEmployeeOfficesQuery(employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	officeIDs, err := s.handlers.ListEmployeeOffices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]string, len(officeIDs))
	for i, id := range officeIDs {
		response[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignEmployeeOffice handles PUT /api/v1/employees/:id/offices/:officeID.
func (s *Server) AssignEmployeeOffice(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	employeeID, officeID, err := employeeOfficeParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAssignEmployeeOfficeCommand(employeeID, officeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignEmployeeOffice.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveEmployeeOffice handles DELETE /api/v1/employees/:id/offices/:officeID.
func (s *Server) RemoveEmployeeOffice(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	employeeID, officeID, err := employeeOfficeParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveEmployeeOfficeCommand(employeeID, officeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveEmployeeOffice.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func employeeOfficeParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	employeeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	officeID, err := kernel.UUIDFromString(ctx.Param("officeID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return employeeID, officeID, nil
}
