package commands

import (
	"context"

	"courier/internal/pkg/errs"
)

// AddPricingRuleCommandHandler persists a new pricing band. Admin-only.
// Existing shipments are unaffected; their payment amounts were fixed
// at creation time.
type AddPricingRuleCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewAddPricingRuleCommandHandler creates a handler for pricing rule changes.
func NewAddPricingRuleCommandHandler(uowFactory PricingUoWFactory) AddPricingRuleCommandHandler {
	return AddPricingRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing rule command.
func (h AddPricingRuleCommandHandler) Handle(ctx context.Context, cmd AddPricingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		return errs.NewNotAuthorizedError("add pricing rule")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PricingRepository().Add(ctx, cmd.Rule()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
