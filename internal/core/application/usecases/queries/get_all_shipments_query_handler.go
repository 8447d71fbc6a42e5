package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves every shipment for the admin
// dashboard.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for admin dashboard queries.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns all shipments newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectShipmentSummaries + `
		ORDER BY s.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
