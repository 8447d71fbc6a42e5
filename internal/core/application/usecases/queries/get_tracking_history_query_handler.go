package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler retrieves a shipment's tracking log.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// The newest-first ordering mirrors the current-status rule: latest
// updated_at wins, ties broken by the highest event id. The first row
// is therefore always the shipment's current status.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking log queries.
// Requires a GORM database connection for query execution.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the log entries newest first.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			updated_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY updated_at DESC, id DESC
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse

		err = rows.Scan(
			&event.TrackID,
			&event.Status,
			&event.Location,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
