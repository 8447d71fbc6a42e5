package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// UpdateStatusCommandHandler applies an admin-initiated status
// transition. The state machine on the aggregate decides whether the
// transition is legal; resetting to Pending clears the agent assignment
// in the same transaction.
type UpdateStatusCommandHandler struct {
	uowFactory ShipmentAgentUoWFactory
	notifier   ports.Notifier
}

// NewUpdateStatusCommandHandler creates a handler for admin status updates.
func NewUpdateStatusCommandHandler(uowFactory ShipmentAgentUoWFactory, notifier ports.Notifier) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update command.
// Returns errs.ErrNotAuthorized for non-admin callers and
// shipment.ErrAlreadyDelivered when the shipment reached its terminal
// state.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		return errs.NewNotAuthorizedError("update status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if _, err = aggregate.UpdateStatus(cmd.Target(), cmd.Location(), time.Now()); err != nil {
		return err
	}

	// Agent contact details ride along in out-for-delivery notices.
	var assigned *agent.Agent
	if aggregate.AgentID() != nil {
		assigned, err = uow.AgentRepository().Get(ctx, *aggregate.AgentID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
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
