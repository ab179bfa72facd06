package commands

import (
	"context"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/application/actor"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler handles shipment lifecycle transitions.
//
// Order of checks matters: the snapshot is loaded first, then authorization,
// then the state machine. The office checks run before the state machine so a
// caller without office authority never learns whether the transition would
// otherwise have been legal. Only after every check passes does the handler
// open the transaction for the projection trio: event package, history row,
// snapshot update.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewChangeShipmentStatusCommandHandler creates a handler for status transitions.
func NewChangeShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, act *actor.Context, cmd ChangeShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	aggregate, err := uow.ShipmentRepository().GetSnapshot(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !act.IsAdmin() {
		currentOffice := aggregate.CurrentOfficeID()
		if currentOffice == nil || !act.CanActInOffice(*currentOffice) {
			return ErrForbidden
		}
		if toOffice := cmd.ToOfficeID(); toOffice != nil && !act.CanActInOffice(*toOffice) {
			return ErrForbidden
		}
	}

	fromStatus := aggregate.Status()
	fromOffice := copyOfficeID(aggregate.CurrentOfficeID())

	if err = aggregate.ChangeStatus(cmd.ToStatus(), cmd.ToOfficeID()); err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	occurredAt := time.Now().UTC()
	changed := shipment.StatusChanged{
		ShipmentID:   aggregate.ID(),
		FromStatus:   fromStatus,
		ToStatus:     aggregate.Status(),
		Actor:        shipment.ActorRef{UserID: act.UserID},
		FromOfficeID: fromOffice,
		ToOfficeID:   cmd.ToOfficeID(),
		OccurredAt:   occurredAt.UnixMilli(),
		Notes:        cmd.Notes(),
	}

	store := uow.EventStore()
	if err = store.EnsureStream(ctx, aggregate.ID(), shipment.StreamKind); err != nil {
		return err
	}
	if _, err = store.Append(ctx, aggregate.ID(), shipment.EventTypeStatusChanged, changed.ToValue()); err != nil {
		return err
	}

	history := ports.HistoryRecord{
		ID:         kernel.NewUUID(),
		ShipmentID: aggregate.ID(),
		FromStatus: &fromStatus,
		ToStatus:   aggregate.Status(),
		ActorID:    act.UserID,
		OfficeID:   fromOffice,
		Notes:      cmd.Notes(),
		OccurredAt: occurredAt,
	}
	if err = uow.ShipmentRepository().AddHistory(ctx, history); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().UpdateSnapshot(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func copyOfficeID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
