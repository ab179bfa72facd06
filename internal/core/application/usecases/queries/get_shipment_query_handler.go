package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment snapshot from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment snapshot queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query and returns the snapshot read model.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			status,
			current_office_id,
			created_at,
			updated_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	resp, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
		}
		return ShipmentResponse{}, err
	}

	return resp, nil
}

func scanShipmentRow(scan func(dest ...any) error) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, clientID uuid.UUID
	var officeID *uuid.UUID

	if err := scan(&id, &clientID, &resp.Status, &officeID, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	owner, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ClientID = owner

	if officeID != nil {
		office, officeErr := kernel.UUIDFromBytes((*officeID)[:])
		if officeErr != nil {
			return ShipmentResponse{}, officeErr
		}
		resp.CurrentOfficeID = &office
	}

	return resp, nil
}
