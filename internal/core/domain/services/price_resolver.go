package services

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
)

// ErrPricingRuleNotFound is returned when no pricing rule covers a
// shipment's courier type and weight. This occurs when either no rules
// are configured or all configured bands miss the declared weight.
var ErrPricingRuleNotFound = errors.New("pricing rule not found")

// PriceResolver is a domain service responsible for selecting the pricing
// rule that applies to a shipment and computing its price.
//
// Business rules:
//   - Weight bounds are inclusive on both ends
//   - When several bands cover the same weight, the rule with the lowest
//     identifier wins, so resolution is deterministic
//   - The price is the matched rule's base price; the per-kilogram rate
//     recorded on the rule does not enter the amount
//
// Example usage:
//
//	resolver := NewPriceResolver()
//	rule, price, err := resolver.Resolve(shipment.Domestic, weight, rules)
//	if errors.Is(err, ErrPricingRuleNotFound) {
//	    // No band covers this shipment
//	    return
//	}
type PriceResolver struct{}

// NewPriceResolver creates a new PriceResolver instance.
func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve selects the applicable pricing rule for the given courier type
// and weight and returns it together with the computed price.
//
// Rules are evaluated in ascending identifier order; the first match
// wins. Returns ErrPricingRuleNotFound when no rule covers the shipment.
func (p PriceResolver) Resolve(courierType shipment.Type, weight kernel.Weight, rules []*pricing.Rule) (*pricing.Rule, decimal.Decimal, error) {
	if err := courierType.Validate(); err != nil {
		return nil, decimal.Zero, err
	}
	if err := weight.Validate(); err != nil {
		return nil, decimal.Zero, err
	}

	ordered := make([]*pricing.Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID() < ordered[j].ID()
	})

	for _, rule := range ordered {
		if err := rule.Validate(); err != nil {
			return nil, decimal.Zero, err
		}
		if rule.Matches(courierType, weight) {
			return rule, rule.Price(), nil
		}
	}

	return nil, decimal.Zero, ErrPricingRuleNotFound
}
