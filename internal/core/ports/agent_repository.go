package ports

import (
	"context"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new delivery agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAll retrieves every registered agent.
	GetAll(ctx context.Context) ([]*agent.Agent, error)
}
