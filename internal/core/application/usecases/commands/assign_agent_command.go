package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents an admin request to hand a shipment to a
// delivery agent.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	agentID    kernel.UUID
	caller     kernel.Caller

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign a delivery agent to
// a shipment.
func NewAssignAgentCommand(shipmentID, agentID kernel.UUID, caller kernel.Caller) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAgentID(agentID),
		cmd.setCaller(caller),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being assigned.
func (c AssignAgentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// AgentID returns the agent receiving the shipment.
func (c AssignAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Caller returns the identity and role attempting the assignment.
func (c AssignAgentCommand) Caller() kernel.Caller { return c.caller }

func (c *AssignAgentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AssignAgentCommand) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.agentID = id
	return nil
}

func (c *AssignAgentCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
