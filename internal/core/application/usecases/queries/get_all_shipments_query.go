package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment, newest first. Backs the
// admin dashboard.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query for the admin shipment list.
// This is a parameterless query that fetches the complete list.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}
