package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the
	// current transaction.
	ShipmentRepository() ShipmentRepository

	// PaymentRepository returns a PaymentRepository bound to the
	// current transaction.
	PaymentRepository() PaymentRepository

	// AgentRepository returns an AgentRepository bound to the
	// current transaction.
	AgentRepository() AgentRepository

	// PricingRepository returns a PricingRepository bound to the
	// current transaction.
	PricingRepository() PricingRepository

	// NotificationConfigRepository returns a
	// NotificationConfigRepository bound to the current transaction.
	NotificationConfigRepository() NotificationConfigRepository
}
