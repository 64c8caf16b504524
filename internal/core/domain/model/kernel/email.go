package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parcels/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s has the local@domain.tld shape.
// Unlike IsValidPhone it rejects the empty string; NewEmail is where an
// omitted address is accepted.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Email is an optional e-mail address. The zero value is an absent address.
type Email struct {
	address string
}

// NewEmail trims s; an empty result is an absent address, anything else must
// satisfy IsValidEmail.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s != "" && !IsValidEmail(s) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an address of the form local@domain.tld", s))
	}
	return Email{address: s}, nil
}

func (e Email) IsEmpty() bool {
	return e.address == ""
}

func (e Email) String() string {
	return e.address
}
