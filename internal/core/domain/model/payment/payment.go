package payment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentNotPending is returned when completing a payment that is
	// no longer in Pending status.
	ErrPaymentNotPending = errors.New("payment is not pending")
)

// Payment is the single payment record owned by a shipment. The amount
// is fixed at creation from the resolved pricing rule and never changes;
// the mode is set only when the payment completes.
type Payment struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	ownerID    kernel.UUID
	amount     decimal.Decimal

	// mode is nil until the payment is completed.
	mode *Mode

	status          Status
	transactionDate time.Time

	isConstructed bool
}

// NewPayment creates a Pending payment for a shipment. The amount comes
// from the pricing rule resolved at shipment creation; the caller
// persists shipment and payment in one atomic unit.
func NewPayment(
	id kernel.UUID,
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	amount decimal.Decimal,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		status:          StatusPending,
		transactionDate: now,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setOwnerID(ownerID),
		p.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	amount decimal.Decimal,
	mode *Mode,
	status Status,
	transactionDate time.Time,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if mode != nil {
		if err := mode.Validate(); err != nil {
			return nil, err
		}
	}

	p := &Payment{
		mode:            mode,
		status:          status,
		transactionDate: transactionDate,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setOwnerID(ownerID),
		p.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// ShipmentID returns the owning shipment.
func (p *Payment) ShipmentID() kernel.UUID { return p.shipmentID }

// OwnerID returns the paying user.
func (p *Payment) OwnerID() kernel.UUID { return p.ownerID }

// Amount returns the amount fixed at creation.
func (p *Payment) Amount() decimal.Decimal { return p.amount }

// Mode returns the settlement mode, nil while the payment is pending.
func (p *Payment) Mode() *Mode { return p.mode }

// Status returns the payment status.
func (p *Payment) Status() Status { return p.status }

// TransactionDate returns the time of the last state change.
func (p *Payment) TransactionDate() time.Time { return p.transactionDate }

// Complete settles a pending payment in the given validated method's
// mode. Completing a payment that is not pending returns
// ErrPaymentNotPending without mutation.
func (p *Payment) Complete(method Method, now time.Time) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if p.status != StatusPending {
		return ErrPaymentNotPending
	}

	mode := method.Mode()
	p.mode = &mode
	p.status = StatusCompleted
	p.transactionDate = now
	return nil
}

// MarkFailed records a failed settlement attempt for a pending payment.
func (p *Payment) MarkFailed(now time.Time) error {
	if p.status != StatusPending {
		return ErrPaymentNotPending
	}
	p.status = StatusFailed
	p.transactionDate = now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.shipmentID = id
	return nil
}

func (p *Payment) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.ownerID = id
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}
