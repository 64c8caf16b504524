package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight or ParseWeight")

// MaxWeightKilograms is the heaviest parcel accepted: 100 tonnes. Together
// with MaxRatePerKilogram it keeps every amount well inside MaxMoney.
const MaxWeightKilograms = 100_000

// Weight is a parcel weight in kilograms, in (0, MaxWeightKilograms].
type Weight struct {
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight validates 0 < kg <= MaxWeightKilograms.
//
// Example:
//
//	w, err := kernel.NewWeight(3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(w) // 3
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", kg))
	}
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", kg))
	}
	if kg > MaxWeightKilograms {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg, 0, MaxWeightKilograms)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// ParseWeight parses a decimal kilogram value such as "2.5".
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Weight{}, errs.NewValueIsRequiredError("weight")
	}
	kg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%q is not a number", s))
	}
	return NewWeight(kg)
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kilograms returns the weight as a float.
func (w Weight) Kilograms() float64 {
	return w.kg
}

// String renders the shortest decimal that parses back to the same weight.
func (w Weight) String() string {
	return strconv.FormatFloat(w.kg, 'f', -1, 64)
}
