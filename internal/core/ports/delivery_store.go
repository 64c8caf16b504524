// Package ports defines the contracts between the delivery core and its adapters.
// Handlers depend on these interfaces; the csvstore, gormstore and xlsxexport
// adapters implement them.
package ports

import (
	"context"

	"parcels/internal/core/domain/model/delivery"
)

// DeliveryStore is the record store: a flat, ordered collection of deliveries
// that is appended to and rewritten wholesale.
//
// Implementations assume a single writer. There is no locking and no
// optimistic concurrency; two processes rewriting the same store race and the
// last writer wins.
type DeliveryStore interface {
	// Initialize creates the backing storage (file with header, table) if it
	// does not exist yet. Calling it again is a no-op.
	Initialize(ctx context.Context) error

	// ReadAll returns every delivery in insertion order. Missing storage is
	// not an error and yields an empty slice. Undecodable data is reported as
	// an *errs.StorageError.
	ReadAll(ctx context.Context) ([]*delivery.Delivery, error)

	// WriteAll replaces the entire contents with deliveries, in the given order.
	WriteAll(ctx context.Context, deliveries []*delivery.Delivery) error

	// Append adds one delivery after the existing ones, initializing the
	// storage first if needed.
	Append(ctx context.Context, d *delivery.Delivery) error
}
