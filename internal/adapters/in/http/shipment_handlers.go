package http

import (
	"encoding/hex"
	"net/http"
	"time"

	"github.com/Emagjby/LogiPack/internal/core/application/usecases/commands"
	"github.com/Emagjby/LogiPack/internal/core/application/usecases/queries"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/labstack/echo/v4"
)

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	ClientID string  `json:"client_id"`
	OfficeID *string `json:"office_id,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ChangeShipmentStatusRequest is the body of POST /api/v1/shipments/:id/status.
type ChangeShipmentStatusRequest struct {
	ToStatus   string  `json:"to_status"`
	ToOfficeID *string `json:"to_office_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// ShipmentResponse is the wire form of the shipment snapshot read model.
type ShipmentResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Status          string    `json:"status"`
	CurrentOfficeID *string   `json:"current_office_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HistoryEntryResponse is the wire form of one status history row.
type HistoryEntryResponse struct {
	FromStatus *string   `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	OfficeID   *string   `json:"office_id,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TimelineEntryResponse is the wire form of one sealed package. Hashes are
// hex encoded; the payload is rendered as plain JSON.
type TimelineEntryResponse struct {
	Seq       int64   `json:"seq"`
	EventType string  `json:"event_type"`
	Hash      string  `json:"hash"`
	PrevHash  *string `json:"prev_hash,omitempty"`
	Payload   any     `json:"payload"`
}

// VerificationResponse is the wire form of a stream audit report.
type VerificationResponse struct {
	StreamID     string   `json:"stream_id"`
	PackageCount int      `json:"package_count"`
	Violations   []string `json:"violations"`
	OK           bool     `json:"ok"`
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	officeID, err := optionalUUID(request.OfficeID)
	if err != nil {
		return badRequest(ctx, "Invalid office id")
	}

	cmd, err := commands.NewCreateShipmentCommand(clientID, officeID, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentID, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), act, cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: shipmentID.String()})
}

// ChangeShipmentStatus handles POST /api/v1/shipments/:id/status - applies a
// lifecycle transition.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	act, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing actor context")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var request ChangeShipmentStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := shipment.StatusFromString(request.ToStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status")
	}

	toOfficeID, err := optionalUUID(request.ToOfficeID)
	if err != nil {
		return badRequest(ctx, "Invalid office id")
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, toStatus, toOfficeID, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeShipmentStatus.Handle(ctx.Request().Context(), act, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one snapshot.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(snapshot))
}

// GetShipments handles GET /api/v1/shipments - retrieves all snapshots.
func (s *Server) GetShipments(ctx echo.Context) error {
	snapshots, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), queries.NewListShipmentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentResponse, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = toShipmentResponse(snapshot)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.GetShipmentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			ActorID:    entry.ActorID.String(),
			OfficeID:   uuidPtrString(entry.OfficeID),
			Notes:      entry.Notes,
			OccurredAt: entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentTimeline handles GET /api/v1/shipments/:id/timeline - the
// decoded event stream of one shipment.
func (s *Server) GetShipmentTimeline(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.GetShipmentTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		var prevHash *string
		if len(entry.PrevHash) > 0 {
			encoded := hex.EncodeToString(entry.PrevHash)
			prevHash = &encoded
		}

		response[i] = TimelineEntryResponse{
			Seq:       entry.Seq,
			EventType: entry.EventType,
			Hash:      hex.EncodeToString(entry.Hash),
			PrevHash:  prevHash,
			Payload:   valueToJSON(entry.Value),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// VerifyShipmentStream handles GET /api/v1/shipments/:id/verify - audits the
// shipment's hash chain.
func (s *Server) VerifyShipmentStream(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewVerifyStreamQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.handlers.VerifyStream.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerificationResponse{
		StreamID:     report.StreamID.String(),
		PackageCount: report.PackageCount,
		Violations:   report.Violations,
		OK:           report.OK,
	})
}

func toShipmentResponse(snapshot queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:              snapshot.ID.String(),
		ClientID:        snapshot.ClientID.String(),
		Status:          snapshot.Status,
		CurrentOfficeID: uuidPtrString(snapshot.CurrentOfficeID),
		CreatedAt:       snapshot.CreatedAt,
		UpdatedAt:       snapshot.UpdatedAt,
	}
}

// optionalUUID parses an optional uuid string, mapping absence to nil.
func optionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidPtrString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// valueToJSON renders a decoded payload value as plain JSON data. Map key
// order is lost in the translation, which is fine for display purposes; the
// canonical bytes remain the source of truth for hashing.
func valueToJSON(v strata.Value) any {
	switch v.Kind() {
	case strata.KindNull:
		return nil
	case strata.KindInt:
		return v.Int64()
	case strata.KindString:
		return v.Text()
	case strata.KindList:
		items := make([]any, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, valueToJSON(item))
		}
		return items
	case strata.KindMap:
		entries := make(map[string]any, v.Len())
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			entries[key] = valueToJSON(value)
		}
		return entries
	default:
		return nil
	}
}
