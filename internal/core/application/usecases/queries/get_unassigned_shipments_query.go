package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrGetUnassignedShipmentsQueryIsNotConstructed = errors.New(
	"GetUnassignedShipmentsQuery must be created via NewGetUnassignedShipmentsQuery constructor",
)

// GetUnassignedShipmentsQuery retrieves shipments that have no delivery
// agent yet, newest first. Feeds the admin's assignment workflow.
type GetUnassignedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedShipmentsQuery creates a query for unassigned shipments.
func NewGetUnassignedShipmentsQuery() GetUnassignedShipmentsQuery {
	return GetUnassignedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedShipmentsQueryIsNotConstructed)
}
