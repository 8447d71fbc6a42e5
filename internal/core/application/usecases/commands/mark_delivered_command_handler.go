package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// MarkDeliveredCommandHandler records delivery confirmation by the
// assigned agent. The aggregate rejects confirmation from any caller
// other than the currently assigned agent, so a reassigned shipment
// cannot be closed by its previous carrier.
type MarkDeliveredCommandHandler struct {
	uowFactory ShipmentAgentUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory ShipmentAgentUoWFactory, notifier ports.Notifier) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation command.
// Returns errs.ErrNotAuthorized when the caller is not an agent or not
// the agent assigned to the shipment, and shipment.ErrAlreadyDelivered
// on repeated confirmation.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Caller().Role() != kernel.RoleAgent {
		return errs.NewNotAuthorizedError("mark delivered")
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

	if _, err = aggregate.MarkDelivered(cmd.Caller().ID(), time.Now()); err != nil {
		return err
	}

	// The delivered notification carries the confirming agent's
	// contact details.
	delivering, err := uow.AgentRepository().Get(ctx, cmd.Caller().ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAgentNotFound
	}
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.ShipmentStatusChanged(ctx, aggregate, delivering)

	return nil
}
