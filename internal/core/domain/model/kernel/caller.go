package kernel

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Role is the authenticated caller's role, handed in by the session
// layer that fronts the lifecycle engine. Authentication itself is an
// external collaborator; the engine only consumes the result.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser owns shipments and pays for them.
	RoleUser

	// RoleAdmin manages agents, pricing and shipment status.
	RoleAdmin

	// RoleAgent delivers shipments assigned to them.
	RoleAgent
)

// RoleFromString parses a role from its string representation.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "User":
		return RoleUser, nil
	case "Admin":
		return RoleAdmin, nil
	case "Agent":
		return RoleAgent, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a recognized role", s))
	}
}

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	case RoleAgent:
		return "Agent"
	default:
		return "Unknown"
	}
}

// Validate checks if the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleAdmin && r != RoleAgent {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Caller identifies the authenticated actor behind a request.
type Caller struct {
	id   UUID
	role Role
}

// NewCaller creates a Caller from a validated identity and role.
func NewCaller(id UUID, role Role) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role}, nil
}

// ID returns the caller's identity.
func (c Caller) ID() UUID { return c.id }

// Role returns the caller's role.
func (c Caller) Role() Role { return c.role }

// IsAdmin reports whether the caller holds the Admin role.
func (c Caller) IsAdmin() bool { return c.role == RoleAdmin }

// Validate returns an error for the zero value.
func (c Caller) Validate() error {
	if err := c.id.Validate(); err != nil {
		return err
	}
	return c.role.Validate()
}
