// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management, and persistence.
//
// Every shipment write is a projection trio: the event package, the history
// row and the snapshot update travel in one unit of work. Authorization and
// domain rejections happen before the transaction begins, so a rejected call
// leaves no trace in storage.
package commands

import (
	"context"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/ports"
)

// ErrForbidden is returned when the acting user is not allowed to perform
// the operation. It is deliberately unspecific: a caller without office
// authority never learns whether the operation would otherwise have succeeded.
var ErrForbidden = errors.New("forbidden")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventStoreFactory provides access to the event store within a transaction.
	EventStoreFactory interface {
		EventStore() ports.EventStore
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// OfficeRepoFactory provides access to the office repository within a transaction.
	OfficeRepoFactory interface {
		OfficeRepository() ports.OfficeRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ShipmentUoW manages the transaction for shipment lifecycle operations:
	// the event store and the shipment read models, plus the reference
	// repositories used for existence checks before the transaction begins.
	ShipmentUoW interface {
		TxManager
		EventStoreFactory
		ShipmentRepoFactory
		ClientRepoFactory
		OfficeRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// OfficeUoW manages transactions for office-only operations.
	OfficeUoW interface {
		TxManager
		OfficeRepoFactory
	}

	// OfficeUoWFactory creates new office unit of work instances.
	OfficeUoWFactory interface {
		Create() OfficeUoW
	}

	// EmployeeUoW manages transactions for employee operations, including
	// office assignments. The office repository is included so assignments
	// can verify the office exists.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		OfficeRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}
)
