// Package ports defines repository and outbound interfaces for the
// courier domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates, including their tracking event history.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate together with its seed
	// tracking event.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// New tracking events are inserted; existing ones are untouched.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its tracking history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment like Get but locks its row
	// for the duration of the current transaction. Concurrent
	// transitions on the same shipment serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByBillNo retrieves a shipment by its public bill number.
	GetByBillNo(ctx context.Context, billNo int64) (*shipment.Shipment, error)
}
