package pricingrepo

import (
	"context"

	"gorm.io/gorm"

	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
)

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db *gorm.DB
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

// Add saves a new pricing rule; the database assigns its identifier.
func (r *GormPricingRepository) Add(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCourierType retrieves all rules for a courier type, ordered by
// ascending identifier so resolution order is stable.
func (r *GormPricingRepository) GetByCourierType(ctx context.Context, courierType shipment.Type) ([]*pricing.Rule, error) {
	if err := courierType.Validate(); err != nil {
		return nil, err
	}

	var dtos []RuleDTO
	if err := r.db.WithContext(ctx).
		Where("courier_type = ?", courierType.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
