package payment

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Mode is the payment instrument chosen when completing a payment.
// A pending payment has no mode; the mode is fixed at completion time.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// CreditCard requires card number, expiry and CVV validation.
	CreditCard

	// DebitCard validates identically to CreditCard.
	DebitCard

	// UPI requires a localpart@domain shaped identifier.
	UPI

	// NetBanking requires no extra fields.
	NetBanking

	// CashOnDelivery requires no extra fields.
	CashOnDelivery
)

// getModeStrings returns Mode values keyed by their wire representation,
// which must match the values stored in the payments table.
func getModeStrings() map[string]Mode {
	return map[string]Mode{
		"Credit Card":      CreditCard,
		"Debit Card":       DebitCard,
		"UPI":              UPI,
		"Net Banking":      NetBanking,
		"Cash on Delivery": CashOnDelivery,
	}
}

// ModeFromString parses a payment mode from its string representation.
func ModeFromString(s string) (Mode, error) {
	mode, ok := getModeStrings()[s]
	if !ok {
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("payment mode is invalid",
			fmt.Errorf("%q is not a recognized payment mode", s))
	}
	return mode, nil
}

// Validate checks if the Mode is one of the defined values.
func (m Mode) Validate() error {
	switch m {
	case CreditCard, DebitCard, UPI, NetBanking, CashOnDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment mode is invalid",
			fmt.Errorf("%d is not a valid payment mode", m))
	}
}

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case CreditCard:
		return "Credit Card"
	case DebitCard:
		return "Debit Card"
	case UPI:
		return "UPI"
	case NetBanking:
		return "Net Banking"
	case CashOnDelivery:
		return "Cash on Delivery"
	default:
		return "Unknown"
	}
}

// isCard reports whether the mode carries card details.
func (m Mode) isCard() bool {
	return m == CreditCard || m == DebitCard
}
