package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrAddPricingRuleCommandIsNotConstructed = errors.New(
	"AddPricingRuleCommand must be created via NewAddPricingRuleCommand constructor",
)

// AddPricingRuleCommand represents an admin request to add a pricing
// band for a courier type.
type AddPricingRuleCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Caller
	rule   *pricing.Rule

	guard guard.ConstructorGuard
}

// NewAddPricingRuleCommand creates a command to add a pricing rule.
// The rule's band and prices are validated on construction.
func NewAddPricingRuleCommand(
	caller kernel.Caller,
	courierType shipment.Type,
	minWeight, maxWeight, basePrice, pricePerKg decimal.Decimal,
) (AddPricingRuleCommand, error) {
	if err := caller.Validate(); err != nil {
		return AddPricingRuleCommand{}, err
	}

	rule, err := pricing.NewRule(courierType, minWeight, maxWeight, basePrice, pricePerKg)
	if err != nil {
		return AddPricingRuleCommand{}, err
	}

	return AddPricingRuleCommand{
		caller: caller,
		rule:   rule,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrAddPricingRuleCommandIsNotConstructed)
}

// Caller returns the identity and role attempting the change.
func (c AddPricingRuleCommand) Caller() kernel.Caller { return c.caller }

// Rule returns the rule to persist.
func (c AddPricingRuleCommand) Rule() *pricing.Rule { return c.rule }
