// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the tracking log of one shipment,
// newest event first.
//
// Example:
//
//	query, _ := NewGetTrackingHistoryQuery(shipmentID)
//	handler := NewGetTrackingHistoryQueryHandler(db)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve history: %w", err)
//	}
//	// events[0] is the shipment's current status
type GetTrackingHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a shipment's tracking log.
func NewGetTrackingHistoryQuery(shipmentID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose log is requested.
func (q GetTrackingHistoryQuery) ShipmentID() kernel.UUID { return q.shipmentID }

// TrackingEventResponse represents one tracking log entry in the read model.
type TrackingEventResponse struct {
	TrackID   int64
	Status    string
	Location  string
	UpdatedAt time.Time
}
