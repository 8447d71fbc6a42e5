// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with proper foreign key relationships.
type ShipmentDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	BillNo      int64              `gorm:"type:bigint;not null;uniqueIndex"`
	Sender      PartyDTO           `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver    PartyDTO           `gorm:"embedded;embeddedPrefix:receiver_"`
	Weight      decimal.Decimal    `gorm:"type:numeric(6,3);not null"`
	CourierType string             `gorm:"type:varchar(32);not null"`
	Country     string             `gorm:"type:varchar(100)"`
	PriceID     int64              `gorm:"type:bigint;not null"`
	AgentID     *uuid.UUID         `gorm:"type:uuid;index"`
	CreatedAt   time.Time          `gorm:"not null"`
	Events      []TrackingEventDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments" instead of "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents the embedded sender or receiver contact columns
// within the shipment table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
	Address string `gorm:"type:varchar(512);not null"`
}

// TrackingEventDTO represents the database structure for persisting tracking log entries.
// The bigserial primary key doubles as the tie-breaker when two events
// share the same updated_at.
type TrackingEventDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(32);not null"`
	Location   string    `gorm:"type:varchar(255);not null"`
	UpdatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for tracking log entries.
// Overrides GORM's default naming convention to use "tracking_events" instead of "tracking_event_dtos".
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Events carrying a zero identifier are new and receive their id on insert.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()

	events := make([]TrackingEventDTO, 0, len(aggregate.Events()))
	for _, e := range aggregate.Events() {
		events = append(events, TrackingEventDTO{
			ID:         e.ID(),
			ShipmentID: shipmentID,
			Status:     e.Status().String(),
			Location:   e.Location(),
			UpdatedAt:  e.UpdatedAt(),
		})
	}

	var agentID *uuid.UUID
	if aggregate.AgentID() != nil {
		raw := aggregate.AgentID().Bytes()
		agentID = &raw
	}

	sender, receiver := aggregate.Sender(), aggregate.Receiver()

	return ShipmentDTO{
		ID:      shipmentID,
		OwnerID: aggregate.OwnerID().Bytes(),
		BillNo:  aggregate.BillNo(),
		Sender: PartyDTO{
			Name:    sender.Name(),
			Email:   sender.Email(),
			Phone:   sender.Phone(),
			Address: sender.Address(),
		},
		Receiver: PartyDTO{
			Name:    receiver.Name(),
			Email:   receiver.Email(),
			Phone:   receiver.Phone(),
			Address: receiver.Address(),
		},
		Weight:      aggregate.Weight().Kg(),
		CourierType: aggregate.CourierType().String(),
		Country:     aggregate.Country(),
		PriceID:     aggregate.PriceID(),
		AgentID:     agentID,
		CreatedAt:   aggregate.CreatedAt(),
		Events:      events,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including its tracking log using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	sender, err := shipment.NewParty(dto.Sender.Name, dto.Sender.Email, dto.Sender.Phone, dto.Sender.Address)
	if err != nil {
		return nil, err
	}

	receiver, err := shipment.NewParty(dto.Receiver.Name, dto.Receiver.Email, dto.Receiver.Phone, dto.Receiver.Address)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	courierType, err := shipment.TypeFromString(dto.CourierType)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	events := make([]*shipment.TrackingEvent, 0, len(dto.Events))
	for _, eventDto := range dto.Events {
		event, eventErr := eventToDomain(eventDto)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		id,
		ownerID,
		dto.BillNo,
		sender,
		receiver,
		weight,
		courierType,
		dto.Country,
		dto.PriceID,
		agentID,
		dto.CreatedAt,
		events,
	)
}

// eventToDomain converts a tracking log DTO to its domain entity.
func eventToDomain(dto TrackingEventDTO) (*shipment.TrackingEvent, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreTrackingEvent(dto.ID, status, dto.Location, dto.UpdatedAt)
}
