package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"parcels/internal/pkg/errs"
)

// SatangPerBaht is the number of minor units in one baht.
const SatangPerBaht = 100

// Money is an amount in satang. Keeping amounts as integers means a stored
// value always reads back exactly as it was computed.
type Money int64

// MaxMoney is the largest amount accepted. It is exactly representable as a
// float64, so parsing and multiplying never round past it.
const MaxMoney = Money(1 << 53)

// MaxRatePerKilogram is the highest tariff rate accepted: 1,000,000 baht.
const MaxRatePerKilogram = Money(1_000_000 * SatangPerBaht)

// NewMoneyFromBaht converts a baht value, rounding half away from zero to the nearest satang.
func NewMoneyFromBaht(baht float64) Money {
	return Money(math.Round(baht * SatangPerBaht))
}

// ParseMoney parses a non-negative baht amount such as "150.00" or "150".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	baht, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	if math.IsNaN(baht) || math.IsInf(baht, 0) || baht < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a non-negative amount", s))
	}
	if baht*SatangPerBaht > float64(MaxMoney) {
		return 0, errs.NewValueIsOutOfRangeError("amount", s, Money(0), MaxMoney)
	}
	return NewMoneyFromBaht(baht), nil
}

// Satang returns the amount in minor units.
func (m Money) Satang() int64 {
	return int64(m)
}

// Times multiplies a per-kilogram price by a weight, rounding to the nearest
// satang. The product saturates at MaxMoney.
func (m Money) Times(w Weight) Money {
	product := math.Round(float64(m) * w.Kilograms())
	if product >= float64(MaxMoney) {
		return MaxMoney
	}
	return Money(product)
}

// String renders the amount with two decimals, e.g. "150.00".
func (m Money) String() string {
	sign := ""
	v := uint64(m)
	if m < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/SatangPerBaht, v%SatangPerBaht)
}
