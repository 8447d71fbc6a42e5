package kernel

import (
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxWeightKg is the heaviest shipment the service accepts. Heavier
// parcels are handled out of band by support.
var MaxWeightKg = decimal.NewFromInt(50)

// Weight is the declared weight of a shipment in kilograms.
//
// A valid Weight is strictly positive and does not exceed MaxWeightKg.
// The zero value is invalid; construct with NewWeight or
// WeightFromFloat.
type Weight struct {
	kg            decimal.Decimal
	isConstructed bool
}

// NewWeight creates a Weight from a decimal kilogram value.
// Returns ValueIsOutOfRangeError when the value is not in (0, MaxWeightKg].
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.LessThanOrEqual(decimal.Zero) || kg.GreaterThan(MaxWeightKg) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), "0", MaxWeightKg.String())
	}
	return Weight{kg: kg, isConstructed: true}, nil
}

// WeightFromFloat creates a Weight from a float64 kilogram value.
func WeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() decimal.Decimal {
	return w.kg
}

// String returns the decimal kilogram value as text.
func (w Weight) String() string {
	return w.kg.String()
}

// IsEqual reports whether two weights represent the same value.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

// Validate returns an error for the zero value.
func (w Weight) Validate() error {
	if !w.isConstructed {
		return errs.NewValueIsRequiredError("weight must be created via NewWeight or WeightFromFloat")
	}
	return nil
}
