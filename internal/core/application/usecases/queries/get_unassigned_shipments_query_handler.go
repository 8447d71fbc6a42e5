package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnassignedShipmentsQueryHandler retrieves shipments still waiting
// for an agent. Delivered shipments are excluded even when their agent
// link was cleared, so closed work never resurfaces in the assignment
// queue.
type GetUnassignedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedShipmentsQueryHandler creates a handler for assignment queue queries.
func NewGetUnassignedShipmentsQueryHandler(db *gorm.DB) GetUnassignedShipmentsQueryHandler {
	return GetUnassignedShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns unassigned shipments newest first.
func (h GetUnassignedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectShipmentSummaries+`
		WHERE s.agent_id IS NULL
		  AND COALESCE((
			SELECT te.status
			FROM tracking_events te
			WHERE te.shipment_id = s.id
			ORDER BY te.updated_at DESC, te.id DESC
			LIMIT 1
		  ), '') != ?
		ORDER BY s.created_at DESC
	`, "Delivered").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
