package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Resolves the applicable pricing rule, creates the
// shipment with its seed tracking event and a pending payment, and
// persists all three in one transaction. The creation notification goes
// out only after the transaction commits.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, ownerID, sender, receiver, weight, shipment.Domestic, "India")
//
//	billNo, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// Shipment is now Pending with its payment awaiting completion
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
	notifier   ports.Notifier
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a CreateShipmentUoWFactory for transactional persistence and a
// Notifier for the post-commit creation notification.
func NewCreateShipmentCommandHandler(uowFactory CreateShipmentUoWFactory, notifier ports.Notifier) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the shipment registration command and returns the
// bill number assigned to the new shipment.
//
// The pricing rule is resolved inside the transaction so the rule set
// read and the price written cannot diverge. Returns
// services.ErrPricingRuleNotFound when no rule covers the declared
// type and weight.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.PricingRepository().GetByCourierType(ctx, cmd.CourierType())
	if err != nil {
		return 0, err
	}

	rule, price, err := services.NewPriceResolver().Resolve(cmd.CourierType(), cmd.Weight(), rules)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OwnerID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.Weight(),
		cmd.CourierType(),
		cmd.Country(),
		rule.ID(),
		now,
	)
	if err != nil {
		return 0, err
	}

	pay, err := payment.NewPayment(kernel.NewUUID(), aggregate.ID(), aggregate.OwnerID(), price, now)
	if err != nil {
		return 0, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.PaymentRepository().Add(ctx, pay); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.ShipmentStatusChanged(ctx, aggregate, nil)

	return aggregate.BillNo(), nil
}
