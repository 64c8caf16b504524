package delivery

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──checkout──> Delivered ──checkout──> (rejected, already delivered)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new delivery.
	Pending

	// Delivered is final. No further transitions exist.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// ParseStatus maps a persisted status name back to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts Pending and Delivered only.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Checkout transitions Pending to Delivered.
//
// Returns:
//   - (Delivered, nil) from Pending
//   - (Delivered, *errs.ObjectIsInTerminalStateError) from Delivered, so callers
//     can report "already delivered" while the status stays the same
//   - (Unknown, *errs.ValueIsInvalidError) from any invalid status
func (s Status) Checkout() (Status, error) {
	switch s {
	case Pending:
		return Delivered, nil
	case Delivered:
		return Delivered, errs.NewObjectIsInTerminalStateError("delivery", s)
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to check out", s))
	}
}
