package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents an admin request to move a shipment to
// a new lifecycle status with an optional location note.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	caller     kernel.Caller
	target     shipment.Status
	location   string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to update a shipment's
// status. The target must be a status an admin may set; Delivered is
// reserved for the assigned agent's confirmation.
func NewUpdateStatusCommand(
	shipmentID kernel.UUID,
	caller kernel.Caller,
	target shipment.Status,
	location string,
) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCaller(caller),
		cmd.setTarget(target),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment being updated.
func (c UpdateStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Caller returns the identity and role attempting the update.
func (c UpdateStatusCommand) Caller() kernel.Caller { return c.caller }

// Target returns the requested status.
func (c UpdateStatusCommand) Target() shipment.Status { return c.target }

// Location returns the location note, empty when not supplied.
func (c UpdateStatusCommand) Location() string { return c.location }

func (c *UpdateStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateStatusCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateStatusCommand) setTarget(target shipment.Status) error {
	if err := target.ValidateAdminTarget(); err != nil {
		return err
	}
	c.target = target
	return nil
}
