package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"parcels/internal/pkg/errs"
)

// TrackingID is the five-digit number identifying a delivery on its receipt.
type TrackingID int

const (
	// TrackingIDMin is the smallest issued tracking number.
	TrackingIDMin TrackingID = 10000
	// TrackingIDMax is the largest issued tracking number.
	TrackingIDMax TrackingID = 99999
)

// NewTrackingID validates that v lies within [TrackingIDMin, TrackingIDMax].
func NewTrackingID(v int) (TrackingID, error) {
	id := TrackingID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseTrackingID accepts exactly five decimal digits, e.g. "12345".
func ParseTrackingID(s string) (TrackingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("tracking id")
	}
	v, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(v) != s {
		return 0, errs.NewValueIsInvalidErrorWithCause("tracking id", fmt.Errorf("%q is not a five-digit number", s))
	}
	return NewTrackingID(v)
}

// NewRandomTrackingID draws uniformly from the valid range. Collisions with
// existing deliveries are possible; callers that need uniqueness must check.
func NewRandomTrackingID() TrackingID {
	span := int(TrackingIDMax - TrackingIDMin + 1)
	return TrackingIDMin + TrackingID(rand.IntN(span)) //nolint:gosec // not a secret
}

func (id TrackingID) Validate() error {
	if id < TrackingIDMin || id > TrackingIDMax {
		return errs.NewValueIsOutOfRangeError("tracking id", int(id), int(TrackingIDMin), int(TrackingIDMax))
	}
	return nil
}

func (id TrackingID) String() string {
	return strconv.Itoa(int(id))
}
