// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// PricingRepoFactory provides access to the pricing repository within a transaction.
	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	// ConfigRepoFactory provides access to the notification config repository within a transaction.
	ConfigRepoFactory interface {
		NotificationConfigRepository() ports.NotificationConfigRepository
	}

	// CreateShipmentUoW manages transactions that create a shipment,
	// its payment, and resolve its price in one unit.
	CreateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		PaymentRepoFactory
		PricingRepoFactory
	}

	// CreateShipmentUoWFactory creates unit of work instances for shipment creation.
	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}

	// PaymentUoW manages transactions over a shipment and its payment.
	PaymentUoW interface {
		TxManager
		ShipmentRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates unit of work instances for payment completion.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ShipmentAgentUoW manages transactions over a shipment and the agent roster.
	ShipmentAgentUoW interface {
		TxManager
		ShipmentRepoFactory
		AgentRepoFactory
	}

	// ShipmentAgentUoWFactory creates unit of work instances for
	// assignment and status transitions.
	ShipmentAgentUoWFactory interface {
		Create() ShipmentAgentUoW
	}

	// AgentUoW manages transactions for agent roster operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates unit of work instances for agent roster operations.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// PricingUoW manages transactions for pricing rule operations.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
	}

	// PricingUoWFactory creates unit of work instances for pricing rule operations.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// ConfigUoW manages transactions for notification config operations.
	ConfigUoW interface {
		TxManager
		ConfigRepoFactory
	}

	// ConfigUoWFactory creates unit of work instances for notification config operations.
	ConfigUoWFactory interface {
		Create() ConfigUoW
	}
)
