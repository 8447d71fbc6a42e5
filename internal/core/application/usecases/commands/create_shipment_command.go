package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the sender and receiver contact records, the declared
// weight, and the courier type used for pricing.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, ownerID, sender, receiver, weight, shipment.Domestic, "India")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, notifier)
//	billNo, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s registered under bill %d", shipmentID, billNo)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	ownerID     kernel.UUID
	sender      shipment.Party
	receiver    shipment.Party
	weight      kernel.Weight
	courierType shipment.Type
	country     string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers, both parties, the declared weight, and the
// courier type. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	sender shipment.Party,
	receiver shipment.Party,
	weight kernel.Weight,
	courierType shipment.Type,
	country string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setWeight(weight),
		cmd.setCourierType(courierType),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier assigned to the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OwnerID returns the identifier of the creating user.
func (c CreateShipmentCommand) OwnerID() kernel.UUID { return c.ownerID }

// Sender returns the sender's contact record.
func (c CreateShipmentCommand) Sender() shipment.Party { return c.sender }

// Receiver returns the receiver's contact record.
func (c CreateShipmentCommand) Receiver() shipment.Party { return c.receiver }

// Weight returns the declared weight.
func (c CreateShipmentCommand) Weight() kernel.Weight { return c.weight }

// CourierType returns the declared courier type.
func (c CreateShipmentCommand) CourierType() shipment.Type { return c.courierType }

// Country returns the destination country, empty when not supplied.
func (c CreateShipmentCommand) Country() string { return c.country }

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.ownerID = id
	return nil
}

func (c *CreateShipmentCommand) setSender(p shipment.Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.sender = p
	return nil
}

func (c *CreateShipmentCommand) setReceiver(p shipment.Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.receiver = p
	return nil
}

func (c *CreateShipmentCommand) setWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	c.weight = w
	return nil
}

func (c *CreateShipmentCommand) setCourierType(t shipment.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.courierType = t
	return nil
}
