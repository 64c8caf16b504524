package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parcels/internal/pkg/errs"
)

// phonePattern matches Thai mobile numbers: a leading 0, then 6, 8 or 9, then eight digits.
var phonePattern = regexp.MustCompile(`^0[689]\d{8}$`)

// IsValidPhone reports whether s is a Thai mobile number.
// The empty string is accepted because both phone fields are optional.
func IsValidPhone(s string) bool {
	return s == "" || phonePattern.MatchString(s)
}

// Phone is an optional Thai mobile number. The zero value is an absent phone.
type Phone struct {
	number string
}

// NewPhone trims s and validates it with IsValidPhone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !IsValidPhone(s) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone", fmt.Errorf("%q is not a Thai mobile number (0[689] followed by 8 digits)", s))
	}
	return Phone{number: s}, nil
}

// IsEmpty reports whether no number was supplied.
func (p Phone) IsEmpty() bool {
	return p.number == ""
}

func (p Phone) String() string {
	return p.number
}
