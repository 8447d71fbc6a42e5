package ports

import (
	"context"

	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
)

// PricingRepository defines the persistence contract for pricing rules.
type PricingRepository interface {
	// Add persists a new pricing rule and assigns its identifier.
	Add(ctx context.Context, rule *pricing.Rule) error

	// GetByCourierType retrieves all rules for a courier type,
	// ordered by ascending identifier.
	GetByCourierType(ctx context.Context, courierType shipment.Type) ([]*pricing.Rule, error)
}
