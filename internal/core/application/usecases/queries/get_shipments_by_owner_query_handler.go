package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsByOwnerQueryHandler retrieves one user's shipments for the
// user dashboard. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
type GetShipmentsByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsByOwnerQueryHandler creates a handler for user dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentsByOwnerQueryHandler(db *gorm.DB) GetShipmentsByOwnerQueryHandler {
	return GetShipmentsByOwnerQueryHandler{db: db}
}

// Handle executes the query and returns the user's shipments newest first.
func (h GetShipmentsByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsByOwnerQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectShipmentSummaries+`
		WHERE s.owner_id = ?
		ORDER BY s.created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
