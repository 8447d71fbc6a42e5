package shipment

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrAlreadyDelivered is returned when an actor tries to mutate a
	// shipment whose current status is Delivered. Delivered is terminal;
	// there is no reopen capability.
	ErrAlreadyDelivered = errors.New("shipment is already delivered")
)

// Shipment is the aggregate root of the courier lifecycle. It owns the
// immutable shipment facts, the optional agent assignment, and the
// append-only tracking log from which the current status is derived.
//
// Invariants:
//   - exactly one tracking event exists at creation (Pending)
//   - the tracking log is append-only; events are never rewritten
//   - a shipment is never OutForDelivery while no agent is assigned
//   - Delivered is terminal and blocks all further transitions
//
// The only mutations the aggregate permits are agent assignment, the
// admin status update, and the agent delivery confirmation; all of them
// go through methods that enforce the state machine.
type Shipment struct {
	id      kernel.UUID
	ownerID kernel.UUID

	// billNo is the unique external reference handed to customers.
	billNo int64

	sender      Party
	receiver    Party
	weight      kernel.Weight
	courierType Type
	country     string
	createdAt   time.Time

	// agentID is the assigned delivery agent, nil while unassigned.
	agentID *kernel.UUID

	// priceID references the pricing rule that fixed the payment amount.
	priceID int64

	events []*TrackingEvent

	isConstructed bool
}

// NewShipment creates a shipment with a Pending tracking event located
// at the sender's address, and a bill number derived from the creation
// time. The caller persists the shipment, its payment, and the seeded
// event as one atomic unit.
func NewShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	sender Party,
	receiver Party,
	weight kernel.Weight,
	courierType Type,
	country string,
	priceID int64,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		billNo:        now.Unix(),
		country:       country,
		priceID:       priceID,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setWeight(weight),
		s.setCourierType(courierType),
	); err != nil {
		return nil, err
	}

	event, err := NewTrackingEvent(Pending, sender.Address(), now)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. Events must
// be the complete tracking log; the derived current status is computed
// from them.
func RestoreShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	billNo int64,
	sender Party,
	receiver Party,
	weight kernel.Weight,
	courierType Type,
	country string,
	priceID int64,
	agentID *kernel.UUID,
	createdAt time.Time,
	events []*TrackingEvent,
) (*Shipment, error) {
	s := &Shipment{
		billNo:        billNo,
		country:       country,
		priceID:       priceID,
		agentID:       agentID,
		createdAt:     createdAt,
		events:        events,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setWeight(weight),
		s.setCourierType(courierType),
	); err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("tracking events")
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OwnerID returns the identifier of the user who created the shipment.
func (s *Shipment) OwnerID() kernel.UUID { return s.ownerID }

// BillNo returns the unique external reference.
func (s *Shipment) BillNo() int64 { return s.billNo }

// Sender returns the sender's contact record.
func (s *Shipment) Sender() Party { return s.sender }

// Receiver returns the receiver's contact record.
func (s *Shipment) Receiver() Party { return s.receiver }

// Weight returns the declared weight.
func (s *Shipment) Weight() kernel.Weight { return s.weight }

// CourierType returns the declared type (Domestic or International).
func (s *Shipment) CourierType() Type { return s.courierType }

// Country returns the destination country.
func (s *Shipment) Country() string { return s.country }

// PriceID returns the pricing rule that fixed the payment amount.
func (s *Shipment) PriceID() int64 { return s.priceID }

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// AgentID returns the assigned delivery agent, nil while unassigned.
func (s *Shipment) AgentID() *kernel.UUID { return s.agentID }

// Events returns the tracking log in append order.
func (s *Shipment) Events() []*TrackingEvent { return s.events }

// CurrentStatus derives the shipment's status from its tracking log:
// the event with the latest updated_at wins, ties broken by the highest
// event id (insertion order).
func (s *Shipment) CurrentStatus() Status {
	var latest *TrackingEvent
	for _, e := range s.events {
		if latest == nil || e.isAfter(latest) {
			latest = e
		}
	}
	if latest == nil {
		return Unknown
	}
	return latest.Status()
}

// CurrentLocation returns the location recorded on the newest tracking
// event, selected by the same rule as CurrentStatus.
func (s *Shipment) CurrentLocation() string {
	var latest *TrackingEvent
	for _, e := range s.events {
		if latest == nil || e.isAfter(latest) {
			latest = e
		}
	}
	if latest == nil {
		return ""
	}
	return latest.Location()
}

// AssignAgent assigns the shipment to a delivery agent. When the current
// status is not already OutForDelivery it appends a tracking event at
// the delivery hub and returns it; reassignment while OutForDelivery
// returns a nil event so repeated assignments do not duplicate tracking
// noise. Delivered shipments reject assignment.
func (s *Shipment) AssignAgent(agentID kernel.UUID, now time.Time) (*TrackingEvent, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	current := s.CurrentStatus()
	if current.IsTerminal() {
		return nil, ErrAlreadyDelivered
	}

	s.agentID = &agentID
	if current == OutForDelivery {
		return nil, nil
	}

	event, err := NewTrackingEvent(OutForDelivery, LocationDeliveryHub, now)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)
	return event, nil
}

// UpdateStatus applies an admin-initiated transition to one of the
// non-terminal states and appends the tracking event recording it.
//
// Resetting to Pending clears the agent assignment as part of the same
// mutation. Moving to OutForDelivery requires an agent to already be
// assigned, otherwise the no-agent-while-out-for-delivery invariant
// would break. Delivered shipments reject every update.
func (s *Shipment) UpdateStatus(target Status, location string, now time.Time) (*TrackingEvent, error) {
	if err := target.ValidateAdminTarget(); err != nil {
		return nil, err
	}
	if s.CurrentStatus().IsTerminal() {
		return nil, ErrAlreadyDelivered
	}

	if target == OutForDelivery && s.agentID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot set %s without an assigned agent", target))
	}

	if target == Pending {
		s.agentID = nil
	}

	if location == "" {
		location = LocationNotSpecified
	}

	event, err := NewTrackingEvent(target, location, now)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)
	return event, nil
}

// MarkDelivered records delivery by the assigned agent. Only the agent
// currently assigned to the shipment may confirm delivery; anyone else
// is rejected without mutation. Confirming an already delivered
// shipment is rejected with ErrAlreadyDelivered.
func (s *Shipment) MarkDelivered(byAgent kernel.UUID, now time.Time) (*TrackingEvent, error) {
	if err := byAgent.Validate(); err != nil {
		return nil, err
	}

	if s.agentID == nil || !s.agentID.IsEqual(byAgent) {
		return nil, errs.NewNotAuthorizedError("mark delivered")
	}
	if s.CurrentStatus().IsTerminal() {
		return nil, ErrAlreadyDelivered
	}

	event, err := NewTrackingEvent(Delivered, LocationDeliveryAddress, now)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)
	return event, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.ownerID = id
	return nil
}

func (s *Shipment) setSender(p Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.sender = p
	return nil
}

func (s *Shipment) setReceiver(p Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.receiver = p
	return nil
}

func (s *Shipment) setWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.weight = w
	return nil
}

func (s *Shipment) setCourierType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.courierType = t
	return nil
}
