// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
// Mode is null while the payment is pending; it is fixed at completion.
type PaymentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Mode            *string         `gorm:"type:varchar(32)"`
	Status          string          `gorm:"type:varchar(16);not null"`
	TransactionDate time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments" instead of "payment_dtos".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain entity to its database representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	var mode *string
	if p.Mode() != nil {
		s := p.Mode().String()
		mode = &s
	}

	return PaymentDTO{
		ID:              p.ID().Bytes(),
		ShipmentID:      p.ShipmentID().Bytes(),
		OwnerID:         p.OwnerID().Bytes(),
		Amount:          p.Amount(),
		Mode:            mode,
		Status:          p.Status().String(),
		TransactionDate: p.TransactionDate(),
	}
}

// toDomain converts a database DTO to a payment domain entity.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var mode *payment.Mode
	if dto.Mode != nil {
		m, modeErr := payment.ModeFromString(*dto.Mode)
		if modeErr != nil {
			return nil, modeErr
		}
		mode = &m
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, shipmentID, ownerID, dto.Amount, mode, status, dto.TransactionDate)
}
