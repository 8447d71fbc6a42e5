package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents a request to settle the payment of a
// shipment. Carries the raw instrument details; mode-specific validation
// happens when the payment method is built inside the handler, against
// the clock of the attempt.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	caller     kernel.Caller
	mode       payment.Mode

	cardNumber string
	cardExpiry string
	cardCVV    string
	upiID      string

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to complete a shipment's
// payment. The mode must be a recognized payment mode; instrument
// fields irrelevant to the mode are ignored.
func NewCompletePaymentCommand(
	shipmentID kernel.UUID,
	caller kernel.Caller,
	mode payment.Mode,
	cardNumber, cardExpiry, cardCVV, upiID string,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		cardNumber: cardNumber,
		cardExpiry: cardExpiry,
		cardCVV:    cardCVV,
		upiID:      upiID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCaller(caller),
		cmd.setMode(mode),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose payment is being completed.
func (c CompletePaymentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Caller returns the identity and role attempting the completion.
func (c CompletePaymentCommand) Caller() kernel.Caller { return c.caller }

// Mode returns the chosen payment mode.
func (c CompletePaymentCommand) Mode() payment.Mode { return c.mode }

// CardNumber returns the raw card number, empty for non-card modes.
func (c CompletePaymentCommand) CardNumber() string { return c.cardNumber }

// CardExpiry returns the raw card expiry, empty for non-card modes.
func (c CompletePaymentCommand) CardExpiry() string { return c.cardExpiry }

// CardCVV returns the raw CVV, empty for non-card modes.
func (c CompletePaymentCommand) CardCVV() string { return c.cardCVV }

// UPIID returns the raw UPI identifier, empty for non-UPI modes.
func (c CompletePaymentCommand) UPIID() string { return c.upiID }

func (c *CompletePaymentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CompletePaymentCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CompletePaymentCommand) setMode(mode payment.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	c.mode = mode
	return nil
}
