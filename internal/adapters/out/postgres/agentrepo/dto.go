// Package agentrepo provides data transfer objects and mapping functions for agent persistence.
package agentrepo

import (
	"github.com/google/uuid"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting delivery agents.
type AgentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32)"`
	AssignedArea string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents" instead of "agent_dtos".
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain entity to its database representation.
func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:           a.ID().Bytes(),
		Name:         a.Name(),
		Email:        a.Email(),
		Phone:        a.Phone(),
		AssignedArea: a.AssignedArea(),
	}
}

// toDomain converts a database DTO to an agent domain entity.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, dto.Email, dto.Phone, dto.AssignedArea)
}
