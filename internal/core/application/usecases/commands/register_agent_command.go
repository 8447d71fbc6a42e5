package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand represents an admin request to add a delivery
// agent to the roster.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID      kernel.UUID
	caller       kernel.Caller
	name         string
	email        string
	phone        string
	assignedArea string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a delivery agent.
func NewRegisterAgentCommand(
	agentID kernel.UUID,
	caller kernel.Caller,
	name, email, phone, assignedArea string,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		phone:        phone,
		assignedArea: assignedArea,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setCaller(caller),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the identifier assigned to the new agent.
func (c RegisterAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Caller returns the identity and role attempting the registration.
func (c RegisterAgentCommand) Caller() kernel.Caller { return c.caller }

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string { return c.name }

// Email returns the agent's email address.
func (c RegisterAgentCommand) Email() string { return c.email }

// Phone returns the agent's phone number.
func (c RegisterAgentCommand) Phone() string { return c.phone }

// AssignedArea returns the area the agent covers.
func (c RegisterAgentCommand) AssignedArea() string { return c.assignedArea }

func (c *RegisterAgentCommand) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.agentID = id
	return nil
}

func (c *RegisterAgentCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
