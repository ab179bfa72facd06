package commands

import (
	"context"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/core/ports"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"
)

// CreateShipmentCommandHandler handles shipment registration.
//
// A successful create writes five facts in one transaction: the snapshot row
// in New status, the creation history row, the stream row, the stream-init
// marker package (seq 1) and the full creation payload package (seq 2).
// Authorization and reference checks happen before the transaction begins.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the new
// shipment id.
//
// Admins may create a shipment with any office or none at all. Employees
// must supply an office from their allowed set; a missing or unauthorized
// office fails with ErrForbidden before anything is written.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd CreateShipmentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !act.IsAdmin() {
		officeID := cmd.CurrentOfficeID()
		if officeID == nil || !act.CanActInOffice(*officeID) {
			return kernel.UUID{}, ErrForbidden
		}
	}

	uow := h.uowFactory.Create()

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return kernel.UUID{}, err
	}
	if officeID := cmd.CurrentOfficeID(); officeID != nil {
		if _, err := uow.OfficeRepository().Get(ctx, *officeID); err != nil {
			return kernel.UUID{}, err
		}
	}

	aggregate, err := shipment.NewShipment(kernel.NewUUID(), cmd.ClientID(), cmd.CurrentOfficeID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().AddSnapshot(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	occurredAt := time.Now().UTC()
	history := ports.HistoryRecord{
		ID:         kernel.NewUUID(),
		ShipmentID: aggregate.ID(),
		FromStatus: nil,
		ToStatus:   aggregate.Status(),
		ActorID:    act.UserID,
		OfficeID:   aggregate.CurrentOfficeID(),
		Notes:      cmd.Notes(),
		OccurredAt: occurredAt,
	}
	if err = uow.ShipmentRepository().AddHistory(ctx, history); err != nil {
		return kernel.UUID{}, err
	}

	store := uow.EventStore()
	if err = store.EnsureStream(ctx, aggregate.ID(), shipment.StreamKind); err != nil {
		return kernel.UUID{}, err
	}

	if _, err = store.Append(ctx, aggregate.ID(), shipment.StreamKind, strata.Map()); err != nil {
		return kernel.UUID{}, err
	}

	created := shipment.ShipmentCreated{
		ShipmentID: aggregate.ID(),
		Status:     aggregate.Status(),
		Actor:      shipment.ActorRef{UserID: act.UserID},
		OfficeID:   aggregate.CurrentOfficeID(),
		OccurredAt: occurredAt.UnixMilli(),
		Notes:      cmd.Notes(),
	}
	if _, err = store.Append(ctx, aggregate.ID(), shipment.EventTypeShipmentCreated, created.ToValue()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
