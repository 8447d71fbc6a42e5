package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ErrAgentNotFound is returned when an assignment references an agent
// that is not on the roster.
var ErrAgentNotFound = errors.New("agent not found")

// AssignAgentCommandHandler hands a shipment to a delivery agent.
// Admin-only. The shipment row is locked while the assignment and its
// tracking event are written, so a concurrent transition cannot observe
// a half-applied assignment. Reassigning a shipment that is already out
// for delivery swaps the agent without appending a duplicate event.
//
// The assignment notification goes out after commit in both cases, so
// the customer learns about the agent change even when no new tracking
// event exists.
type AssignAgentCommandHandler struct {
	uowFactory ShipmentAgentUoWFactory
	notifier   ports.Notifier
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory ShipmentAgentUoWFactory, notifier ports.Notifier) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
// Returns errs.ErrNotAuthorized for non-admin callers, ErrAgentNotFound
// when the agent does not exist, and shipment.ErrAlreadyDelivered when
// the shipment reached its terminal state.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		return errs.NewNotAuthorizedError("assign agent")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assigned, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAgentNotFound
	}
	if err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipmentNotFound
	}
	if err != nil {
		return err
	}

	if _, err = aggregate.AssignAgent(cmd.AgentID(), time.Now()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.ShipmentStatusChanged(ctx, aggregate, assigned)

	return nil
}
