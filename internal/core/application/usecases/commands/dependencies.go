// Package commands contains the operations that modify the delivery store.
// Every command follows the same pattern: a value built and validated by its
// constructor, and a handler that loads, mutates and persists deliveries.
package commands

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
)

type (
	// IDGenerator issues tracking ids for new deliveries.
	IDGenerator interface {
		NextID() kernel.TrackingID
	}

	// Clock supplies the booking date of new deliveries.
	Clock interface {
		Now() time.Time
	}
)

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() kernel.TrackingID

func (f IDGeneratorFunc) NextID() kernel.TrackingID {
	return f()
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
