package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves the delivery agent roster for the admin
// assignment workflow.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all agents.
// This is a parameterless query that fetches the complete roster.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse represents agent information in the read model.
type GetAllAgentsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	AssignedArea string
}
