package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetShipmentsByOwnerQueryIsNotConstructed = errors.New(
	"GetShipmentsByOwnerQuery must be created via NewGetShipmentsByOwnerQuery constructor",
)

// GetShipmentsByOwnerQuery retrieves the shipments a user created,
// newest first. Backs the user dashboard.
type GetShipmentsByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsByOwnerQuery creates a query for one user's shipments.
func NewGetShipmentsByOwnerQuery(ownerID kernel.UUID) (GetShipmentsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetShipmentsByOwnerQuery{}, err
	}

	return GetShipmentsByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsByOwnerQueryIsNotConstructed)
}

// OwnerID returns the user whose shipments are requested.
func (q GetShipmentsByOwnerQuery) OwnerID() kernel.UUID { return q.ownerID }

// ShipmentSummaryResponse represents one shipment row in the dashboard
// read models. Status is derived from the newest tracking event;
// PaymentStatus and Amount come from the shipment's payment.
type ShipmentSummaryResponse struct {
	ID            kernel.UUID
	BillNo        int64
	SenderName    string
	ReceiverName  string
	CourierType   string
	Country       string
	Weight        decimal.Decimal
	Status        string
	PaymentStatus string
	Amount        decimal.Decimal
	AgentAssigned bool
	CreatedAt     time.Time
}
