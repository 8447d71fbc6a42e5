package shipment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Type classifies a shipment for pricing purposes.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// Domestic shipments stay within the service's home country.
	Domestic

	// International shipments cross a border and price differently.
	International
)

// TypeFromString parses a shipment type from its string representation.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "Domestic":
		return Domestic, nil
	case "International":
		return International, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("courier type is invalid",
			fmt.Errorf("%q is not a recognized courier type", s))
	}
}

// Validate checks if the Type is one of the defined values.
func (t Type) Validate() error {
	if t != Domestic && t != International {
		return errs.NewValueIsInvalidErrorWithCause("courier type is invalid",
			fmt.Errorf("%d is not a valid courier type", t))
	}
	return nil
}

// String returns the display name of the type.
func (t Type) String() string {
	switch t {
	case Domestic:
		return "Domestic"
	case International:
		return "International"
	default:
		return "Unknown"
	}
}
