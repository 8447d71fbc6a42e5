// Package agent contains the DeliveryAgent entity. Agents are referenced
// by shipments during the OutForDelivery phase; the core enforces no
// capacity limit on how many shipments an agent carries.
package agent

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")

// Agent is a human delivery agent. Contact details are included in
// notifications when a shipment goes out for delivery.
type Agent struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	assignedArea string

	isConstructed bool
}

// NewAgent creates an agent with the required contact details.
func NewAgent(id kernel.UUID, name, email, phone, assignedArea string) (*Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &Agent{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		assignedArea:  assignedArea,
		isConstructed: true,
	}, nil
}

// RestoreAgent reconstructs an agent from persistence.
func RestoreAgent(id kernel.UUID, name, email, phone, assignedArea string) (*Agent, error) {
	return NewAgent(id, name, email, phone, assignedArea)
}

// Validate ensures the Agent was created through a constructor.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID { return a.id }

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Email returns the agent's email address.
func (a *Agent) Email() string { return a.email }

// Phone returns the agent's phone number.
func (a *Agent) Phone() string { return a.phone }

// AssignedArea returns the area the agent covers.
func (a *Agent) AssignedArea() string { return a.assignedArea }
