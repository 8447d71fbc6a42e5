// Package pricing contains the tariff rules that price a shipment from
// its courier type and weight. Rules carry an inclusive weight band; the
// first matching rule by ascending identifier wins, so rule ordering is
// deterministic even when bands overlap.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// Rule is a single pricing band for a courier type. Weight bounds are
// inclusive on both ends.
type Rule struct {
	id          int64
	courierType shipment.Type
	minWeight   decimal.Decimal
	maxWeight   decimal.Decimal
	basePrice   decimal.Decimal
	pricePerKg  decimal.Decimal

	isConstructed bool
}

// NewRule creates an unpersisted rule (id 0, assigned by storage).
func NewRule(courierType shipment.Type, minWeight, maxWeight, basePrice, pricePerKg decimal.Decimal) (*Rule, error) {
	return RestoreRule(0, courierType, minWeight, maxWeight, basePrice, pricePerKg)
}

// RestoreRule reconstructs a rule from persistence.
func RestoreRule(id int64, courierType shipment.Type, minWeight, maxWeight, basePrice, pricePerKg decimal.Decimal) (*Rule, error) {
	if err := courierType.Validate(); err != nil {
		return nil, err
	}
	if minWeight.IsNegative() {
		return nil, errs.NewValueIsInvalidError("minWeight")
	}
	if maxWeight.LessThan(minWeight) {
		return nil, errs.NewValueIsInvalidError("maxWeight")
	}
	if basePrice.IsNegative() || pricePerKg.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price")
	}

	return &Rule{
		id:            id,
		courierType:   courierType,
		minWeight:     minWeight,
		maxWeight:     maxWeight,
		basePrice:     basePrice,
		pricePerKg:    pricePerKg,
		isConstructed: true,
	}, nil
}

// Validate ensures the Rule was created through a constructor.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's identifier. Zero means not yet persisted.
func (r *Rule) ID() int64 { return r.id }

// CourierType returns the courier type the rule applies to.
func (r *Rule) CourierType() shipment.Type { return r.courierType }

// MinWeight returns the inclusive lower weight bound in kilograms.
func (r *Rule) MinWeight() decimal.Decimal { return r.minWeight }

// MaxWeight returns the inclusive upper weight bound in kilograms.
func (r *Rule) MaxWeight() decimal.Decimal { return r.maxWeight }

// BasePrice returns the flat component of the price.
func (r *Rule) BasePrice() decimal.Decimal { return r.basePrice }

// PricePerKg returns the rule's recorded per-kilogram rate. The rate
// does not enter the charged amount.
func (r *Rule) PricePerKg() decimal.Decimal { return r.pricePerKg }

// Matches reports whether the rule covers the given courier type and
// weight. Both weight bounds are inclusive.
func (r *Rule) Matches(courierType shipment.Type, weight kernel.Weight) bool {
	if r.courierType != courierType {
		return false
	}
	kg := weight.Kg()
	return kg.GreaterThanOrEqual(r.minWeight) && kg.LessThanOrEqual(r.maxWeight)
}

// Price returns the amount charged for a shipment matched by this
// rule. The charge is the band's base price; the per-kg rate is
// recorded on the rule but does not enter the amount.
func (r *Rule) Price() decimal.Decimal {
	return r.basePrice
}
