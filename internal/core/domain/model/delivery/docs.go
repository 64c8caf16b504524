// Package delivery provides the Delivery aggregate: one parcel booked for
// transport between two served cities, together with its lifecycle.
//
// The package includes:
//   - Delivery: the aggregate root holding contact, route, weight, price and status
//   - Status: the state machine Pending -> Delivered
//   - Changes: the optional field replacements accepted by Delivery.Edit
//
// Key business rules:
//   - A delivery has a tracking id, a creation date and a non-blank sender name
//   - Origin and destination are served cities and must differ
//   - Weight is positive; the amount is always the tariff applied to (destination, weight)
//   - Checkout moves Pending to Delivered once; checking out again is reported, not applied
//   - Deliveries are looked up by tracking id together with the sender name
package delivery
