package kernel

import (
	"fmt"
	"slices"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrCityIsNotConstructed is returned when a zero-value City is used.
var ErrCityIsNotConstructed = errs.NewValueIsRequiredError("city must be created via NewCity")

// cities is the ordered list of served cities. Order matters for display.
var cities = []string{
	"Bangkok",
	"Chiang Mai",
	"Phuket",
	"Chiang Rai",
	"Khon Kaen",
	"Nakhon Ratchasima",
	"Udon Thani",
	"Hat Yai",
	"Pattaya",
	"Ayutthaya",
	"Hua Hin",
	"Rangsit",
}

// Cities returns a copy of the served cities in display order.
func Cities() []string {
	return slices.Clone(cities)
}

// IsValidCity reports whether s is exactly one of Cities().
func IsValidCity(s string) bool {
	return slices.Contains(cities, s)
}

// City is one of the served cities. The zero value is invalid.
type City struct {
	name  string
	guard guard.ConstructorGuard
}

// NewCity trims name and requires an exact match against Cities().
func NewCity(name string) (City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return City{}, errs.NewValueIsRequiredError("city")
	}
	if !IsValidCity(name) {
		return City{}, errs.NewValueIsInvalidErrorWithCause(
			"city", fmt.Errorf("%q is not one of %s", name, strings.Join(cities, ", ")))
	}
	return City{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c City) IsEqual(other City) bool {
	return c.name == other.name
}

func (c City) String() string {
	return c.name
}
