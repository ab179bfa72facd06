// Package http provides the inbound HTTP adapter: an echo server exposing
// the shipment lifecycle, its audit surface and the reference data CRUD,
// behind JWT bearer authentication.
package http

import (
	"net/http"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case handler the server exposes.
type Handlers struct {
	// Shipment commands
	CreateShipment       commands.CreateShipmentCommandHandler
	ChangeShipmentStatus commands.ChangeShipmentStatusCommandHandler

	// Reference data commands
	CreateClient         commands.CreateClientCommandHandler
	UpdateClient         commands.UpdateClientCommandHandler
	DeleteClient         commands.DeleteClientCommandHandler
	CreateOffice         commands.CreateOfficeCommandHandler
	UpdateOffice         commands.UpdateOfficeCommandHandler
	DeleteOffice         commands.DeleteOfficeCommandHandler
	CreateEmployee       commands.CreateEmployeeCommandHandler
	UpdateEmployee       commands.UpdateEmployeeCommandHandler
	DeleteEmployee       commands.DeleteEmployeeCommandHandler
	AssignEmployeeOffice commands.AssignEmployeeOfficeCommandHandler
	RemoveEmployeeOffice commands.RemoveEmployeeOfficeCommandHandler

	// Queries
	GetShipment         queries.GetShipmentQueryHandler
	ListShipments       queries.ListShipmentsQueryHandler
	GetShipmentHistory  queries.GetShipmentHistoryQueryHandler
	GetShipmentTimeline queries.GetShipmentTimelineQueryHandler
	VerifyStream        queries.VerifyStreamQueryHandler
	ListClients         queries.ListClientsQueryHandler
	ListOffices         queries.ListOfficesQueryHandler
	ListEmployees       queries.ListEmployeesQueryHandler
	ListEmployeeOffices queries.ListEmployeeOfficesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all authenticated API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", auth.Middleware)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.POST("/shipments/:id/status", s.ChangeShipmentStatus)
	api.GET("/shipments/:id/history", s.GetShipmentHistory)
	api.GET("/shipments/:id/timeline", s.GetShipmentTimeline)
	api.GET("/shipments/:id/verify", s.VerifyShipmentStream)

	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.GetClients)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.POST("/offices", s.CreateOffice)
	api.GET("/offices", s.GetOffices)
	api.PUT("/offices/:id", s.UpdateOffice)
	api.DELETE("/offices/:id", s.DeleteOffice)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.GetEmployees)
	api.PUT("/employees/:id", s.UpdateEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)
	api.GET("/employees/:id/offices", s.GetEmployeeOffices)
	api.PUT("/employees/:id/offices/:officeID", s.AssignEmployeeOffice)
	api.DELETE("/employees/:id/offices/:officeID", s.RemoveEmployeeOffice)
}
