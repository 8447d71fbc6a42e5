package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery resolves a public bill number to the shipment's
// summary and its tracking log, newest event first. This backs the
// public tracking page, so it carries no caller identity.
//
// Example:
//
//	query, _ := NewTrackShipmentQuery(1736412345)
//	handler := NewTrackShipmentQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown bill number
//	    return
//	}
//	fmt.Printf("Shipment is %s\n", result.Status)
type TrackShipmentQuery struct {
	billNo int64

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for the public tracking lookup.
func NewTrackShipmentQuery(billNo int64) (TrackShipmentQuery, error) {
	if billNo <= 0 {
		return TrackShipmentQuery{}, errs.NewValueIsInvalidError("bill number")
	}

	return TrackShipmentQuery{
		billNo: billNo,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// BillNo returns the bill number being resolved.
func (q TrackShipmentQuery) BillNo() int64 { return q.billNo }

// TrackShipmentQueryResponse is the public tracking read model. Status
// is the shipment's current status, derived from the newest log entry.
type TrackShipmentQueryResponse struct {
	ShipmentID   kernel.UUID
	BillNo       int64
	SenderName   string
	ReceiverName string
	CourierType  string
	Country      string
	Status       string
	Events       []TrackingEventResponse
}
