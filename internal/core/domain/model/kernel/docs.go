// Package kernel provides the value objects and field validators shared by the
// delivery domain.
//
// The package includes:
//   - IsValidPhone, IsValidEmail, IsValidCity: pure predicates over raw input
//   - Phone, Email: optional contact fields (the zero value means "not supplied")
//   - City: a member of the fixed list of served cities
//   - Weight: a positive parcel weight in kilograms
//   - Money: a fixed-point amount in satang
//   - TrackingID: the five-digit number printed on every receipt
//
// Constructors trim their input and return typed errors from internal/pkg/errs,
// so callers can tell rejected input apart from storage failures.
package kernel
