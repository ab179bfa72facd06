package cmd

import (
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/eventstore"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) officeUoWFactory() commands.OfficeUoWFactory {
	return FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) employeeUoWFactory() commands.EmployeeUoWFactory {
	return FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	return commands.NewChangeShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateOfficeCommandHandler() commands.CreateOfficeCommandHandler {
	return commands.NewCreateOfficeCommandHandler(c.officeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOfficeCommandHandler() commands.UpdateOfficeCommandHandler {
	return commands.NewUpdateOfficeCommandHandler(c.officeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOfficeCommandHandler() commands.DeleteOfficeCommandHandler {
	return commands.NewDeleteOfficeCommandHandler(c.officeUoWFactory())
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateEmployeeCommandHandler() commands.UpdateEmployeeCommandHandler {
	return commands.NewUpdateEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteEmployeeCommandHandler() commands.DeleteEmployeeCommandHandler {
	return commands.NewDeleteEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateAssignEmployeeOfficeCommandHandler() commands.AssignEmployeeOfficeCommandHandler {
	return commands.NewAssignEmployeeOfficeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateRemoveEmployeeOfficeCommandHandler() commands.RemoveEmployeeOfficeCommandHandler {
	return commands.NewRemoveEmployeeOfficeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentTimelineQueryHandler() queries.GetShipmentTimelineQueryHandler {
	return queries.NewGetShipmentTimelineQueryHandler(eventstore.NewGormEventStore(c.gormDB))
}

func (c *CompositionRoot) CreateVerifyStreamQueryHandler() queries.VerifyStreamQueryHandler {
	return queries.NewVerifyStreamQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStreamsQueryHandler() queries.ListStreamsQueryHandler {
	return queries.NewListStreamsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOfficesQueryHandler() queries.ListOfficesQueryHandler {
	return queries.NewListOfficesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEmployeeOfficesQueryHandler() queries.ListEmployeeOfficesQueryHandler {
	return queries.NewListEmployeeOfficesQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOfficeUoWFactory func() commands.OfficeUoW

func (f FuncOfficeUoWFactory) Create() commands.OfficeUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}
