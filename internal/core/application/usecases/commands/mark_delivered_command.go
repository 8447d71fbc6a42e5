package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents an agent's confirmation that a
// shipment reached its receiver.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	caller     kernel.Caller

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command confirming delivery of a
// shipment by the calling agent.
func NewMarkDeliveredCommand(shipmentID kernel.UUID, caller kernel.Caller) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCaller(caller),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ShipmentID returns the shipment being confirmed.
func (c MarkDeliveredCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Caller returns the identity and role confirming delivery.
func (c MarkDeliveredCommand) Caller() kernel.Caller { return c.caller }

func (c *MarkDeliveredCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *MarkDeliveredCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
