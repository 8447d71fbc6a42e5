package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> OutForDelivery ──┐
//	          ├──> InTransit        ├──> Delivered (terminal)
//	          └──> Cancelled        │
//	     (admin may move between the non-terminal states,
//	      including back to Pending, which unassigns the agent)
//
// Delivered is terminal: no transition leaves it, and no reopen
// capability exists. The current status of a shipment is never stored;
// it is derived from the most recent tracking event.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipment is created.
	// Shipments return to Pending when an admin resets them, which
	// also clears the agent assignment.
	Pending

	// OutForDelivery indicates the shipment is with a delivery agent.
	// A shipment must have an agent assigned while in this status.
	OutForDelivery

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// Cancelled indicates the shipment was cancelled by an admin.
	Cancelled

	// Delivered indicates the shipment reached the receiver.
	// This is a terminal state; only a delivery agent can set it.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire/display
// representations. The strings match the tracking log values used by
// the rest of the system and must not change.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		OutForDelivery: "Out for Delivery",
		InTransit:      "In Transit",
		Cancelled:      "Cancelled",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns only valid Status values, keyed by their
// string representation for parsing.
func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"Pending":          Pending,
		"Out for Delivery": OutForDelivery,
		"In Transit":       InTransit,
		"Cancelled":        Cancelled,
		"Delivered":        Delivered,
	}
}

// StatusFromString parses a status from its string representation.
// Unrecognized strings yield a ValueIsInvalidError; callers surface this
// as a validation failure before any mutation happens.
func StatusFromString(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a recognized status", s))
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateAdminTarget checks that an admin may set this status directly.
// Admins may move shipments between the non-terminal states; Delivered
// is reserved for the assigned delivery agent.
func (s Status) ValidateAdminTarget() error {
	switch s {
	case Pending, OutForDelivery, InTransit, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a status an admin may set", s.String()))
	}
}
