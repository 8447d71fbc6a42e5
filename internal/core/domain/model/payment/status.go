package payment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the state of a shipment's payment.
//
//	Pending ──> Completed
//	    └─────> Failed
//
// Exactly one payment exists per shipment, created atomically with it
// in Pending status.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state; no payment mode is set yet.
	StatusPending

	// StatusCompleted means the payment was settled in a validated mode.
	StatusCompleted

	// StatusFailed means the payment attempt was recorded as failed.
	StatusFailed
)

// StatusFromString parses a payment status from its string representation.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "Pending":
		return StatusPending, nil
	case "Completed":
		return StatusCompleted, nil
	case "Failed":
		return StatusFailed, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%q is not a recognized payment status", s))
	}
}

// Validate checks if the Status is one of the defined values.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusCompleted && s != StatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
