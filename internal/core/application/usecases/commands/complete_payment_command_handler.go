package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/errs"
)

// ErrShipmentNotFound is returned when a command references a shipment
// that does not exist.
var ErrShipmentNotFound = errors.New("shipment not found")

// CompletePaymentCommandHandler settles a shipment's pending payment.
// Validates the instrument for the chosen mode, checks that the caller
// owns the shipment or is an admin, and records the completion in one
// transaction. The shipment row is locked for the duration so a
// concurrent completion on the same shipment cannot double-settle.
//
// No tracking event is appended and no notification is sent; payment
// completion does not change the shipment's delivery status.
type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment completion.
func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment completion command.
// Returns errs.ErrNotAuthorized when the caller neither owns the
// shipment nor holds the admin role, and payment.ErrPaymentNotPending
// when the payment was already settled.
func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	method, err := buildMethod(cmd, time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipmentNotFound
	}
	if err != nil {
		return err
	}

	caller := cmd.Caller()
	if !caller.IsAdmin() && !aggregate.OwnerID().IsEqual(caller.ID()) {
		return errs.NewNotAuthorizedError("complete payment")
	}

	pay, err := uow.PaymentRepository().GetByShipmentID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = pay.Complete(method, time.Now()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, pay); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildMethod validates the instrument details for the chosen mode.
func buildMethod(cmd CompletePaymentCommand, now time.Time) (payment.Method, error) {
	switch cmd.Mode() {
	case payment.CreditCard, payment.DebitCard:
		return payment.NewCardMethod(cmd.Mode(), cmd.CardNumber(), cmd.CardExpiry(), cmd.CardCVV(), now)
	case payment.UPI:
		return payment.NewUPIMethod(cmd.UPIID())
	default:
		return payment.NewSimpleMethod(cmd.Mode())
	}
}
