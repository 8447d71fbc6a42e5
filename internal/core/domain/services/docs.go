// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the courier system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PriceResolver: A domain service for selecting the pricing rule for a shipment
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
