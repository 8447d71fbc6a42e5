package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courier/internal/core/domain/model/kernel"
)

// GetAllAgentsQueryHandler retrieves the agent roster from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all agents.
// Returns a slice of agent read models sorted by name.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			assigned_area
		FROM agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent GetAllAgentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&agent.Name,
			&agent.Email,
			&agent.Phone,
			&agent.AssignedArea,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agent.ID = agentID

		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
