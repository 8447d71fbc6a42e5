package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment entities.
// Every shipment has exactly one payment, created alongside it.
type PaymentRepository interface {
	// Add persists a new payment entity.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment entity.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetByShipmentID retrieves the payment attached to a shipment.
	GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error)
}
