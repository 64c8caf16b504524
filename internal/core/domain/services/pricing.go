package services

import (
	"parcels/internal/core/domain/model/kernel"
)

// DefaultRatePerKilogram is the standard price of one kilogram: 50 baht.
const DefaultRatePerKilogram = kernel.Money(50 * kernel.SatangPerBaht)

// Pricing charges a flat rate per kilogram to any served city and nothing
// to an unknown destination.
//
// Example usage:
//
//	pricing := services.NewPricing(services.DefaultRatePerKilogram)
//	weight, _ := kernel.NewWeight(3)
//	pricing.CalculateAmount("Chiang Mai", weight) // 150.00
//	pricing.CalculateAmount("Tokyo", weight)      // 0.00
type Pricing struct {
	ratePerKilogram kernel.Money
}

// NewPricing creates a tariff charging ratePerKilogram for every kilogram.
func NewPricing(ratePerKilogram kernel.Money) Pricing {
	return Pricing{ratePerKilogram: ratePerKilogram}
}

// RatePerKilogram returns the configured rate.
func (p Pricing) RatePerKilogram() kernel.Money {
	return p.ratePerKilogram
}

// CalculateAmount returns rate × weight when destination is a served city, else zero.
// The result is rounded to the nearest satang.
func (p Pricing) CalculateAmount(destination string, weight kernel.Weight) kernel.Money {
	if !kernel.IsValidCity(destination) || weight.Validate() != nil {
		return 0
	}
	return p.ratePerKilogram.Times(weight)
}
