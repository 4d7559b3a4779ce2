// Package services provides domain services that implement business logic
// spanning more than one domain object in the flower-shop system.
//
// The package includes:
//   - DeliveryPricing: computes delivery fees from store-wide pricing settings
//
// Domain services hold no mutable state and depend only on the domain model,
// following Domain-Driven Design principles.
package services
