package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// TrackShipmentQueryHandler backs the public tracking page: bill number
// in, shipment summary with its full log out.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for public tracking lookups.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle resolves the bill number and returns the shipment with its
// tracking log newest first. Returns errs.ErrObjectNotFound when the
// bill number is unknown.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var response TrackShipmentQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bill_no,
			sender_name,
			receiver_name,
			courier_type,
			country
		FROM shipments
		WHERE bill_no = ?
	`, query.BillNo()).Row()

	err := row.Scan(
		&id,
		&response.BillNo,
		&response.SenderName,
		&response.ReceiverName,
		&response.CourierType,
		&response.Country,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError("bill number", query.BillNo())
	}
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	response.ShipmentID = shipmentID

	historyQuery, err := NewGetTrackingHistoryQuery(shipmentID)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	events, err := NewGetTrackingHistoryQueryHandler(h.db).Handle(ctx, historyQuery)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	response.Events = events

	if len(events) > 0 {
		response.Status = events[0].Status
	}

	return response, nil
}
