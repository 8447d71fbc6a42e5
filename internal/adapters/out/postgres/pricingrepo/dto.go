// Package pricingrepo provides data transfer objects and mapping functions for pricing rule persistence.
package pricingrepo

import (
	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
)

// RuleDTO represents the database structure for persisting pricing rules.
// The bigserial primary key is the rule's identity and fixes resolution
// order when weight bands overlap.
type RuleDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	CourierType string          `gorm:"type:varchar(32);not null;index"`
	MinWeight   decimal.Decimal `gorm:"type:numeric(6,3);not null"`
	MaxWeight   decimal.Decimal `gorm:"type:numeric(6,3);not null"`
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PricePerKg  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for pricing rules.
// Overrides GORM's default naming convention to use "pricing_rules" instead of "rule_dtos".
func (RuleDTO) TableName() string {
	return "pricing_rules"
}

// fromDomain converts a pricing rule to its database representation.
func fromDomain(rule *pricing.Rule) RuleDTO {
	return RuleDTO{
		ID:          rule.ID(),
		CourierType: rule.CourierType().String(),
		MinWeight:   rule.MinWeight(),
		MaxWeight:   rule.MaxWeight(),
		BasePrice:   rule.BasePrice(),
		PricePerKg:  rule.PricePerKg(),
	}
}

// toDomain converts a database DTO to a pricing rule.
func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	courierType, err := shipment.TypeFromString(dto.CourierType)
	if err != nil {
		return nil, err
	}

	return pricing.RestoreRule(dto.ID, courierType, dto.MinWeight, dto.MaxWeight, dto.BasePrice, dto.PricePerKg)
}
