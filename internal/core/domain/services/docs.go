// Package services provides domain services of the delivery system: business
// rules that do not belong to a single aggregate.
//
// The package includes:
//   - Pricing: the tariff mapping (destination, weight) to the amount charged
package services
