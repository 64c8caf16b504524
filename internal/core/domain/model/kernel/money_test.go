package kernel_test

import (
	"math"
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", kernel.Money(0).String())
	assert.Equal(t, "150.00", kernel.Money(15000).String())
	assert.Equal(t, "0.05", kernel.Money(5).String())
	assert.Equal(t, "-1.50", kernel.Money(-150).String())
	assert.Equal(t, "-92233720368547758.08", kernel.Money(math.MinInt64).String())
}

func TestNewMoneyFromBaht(t *testing.T) {
	assert.Equal(t, kernel.Money(5000), kernel.NewMoneyFromBaht(50))
	assert.Equal(t, kernel.Money(1), kernel.NewMoneyFromBaht(0.005))
	assert.Equal(t, kernel.Money(30), kernel.NewMoneyFromBaht(0.1+0.2))
}

func TestMoney_Times(t *testing.T) {
	rate := kernel.NewMoneyFromBaht(50)

	t.Run("whole kilograms", func(t *testing.T) {
		w, _ := kernel.NewWeight(3)
		assert.Equal(t, "150.00", rate.Times(w).String())
	})

	t.Run("fractional kilograms round to satang", func(t *testing.T) {
		w, _ := kernel.NewWeight(1.2346)
		assert.Equal(t, kernel.Money(6173), rate.Times(w))
	})

	t.Run("no drift on repeated decimals", func(t *testing.T) {
		w, _ := kernel.NewWeight(0.1 + 0.2)
		assert.Equal(t, "15.00", rate.Times(w).String())
	})

	t.Run("largest rate and weight stay in range", func(t *testing.T) {
		w, err := kernel.NewWeight(kernel.MaxWeightKilograms)
		require.NoError(t, err)

		amount := kernel.MaxRatePerKilogram.Times(w)

		assert.Equal(t, kernel.Money(10_000_000_000_000), amount)
		parsed, err := kernel.ParseMoney(amount.String())
		require.NoError(t, err)
		assert.Equal(t, amount, parsed)
	})

	t.Run("saturates at MaxMoney", func(t *testing.T) {
		w, _ := kernel.NewWeight(kernel.MaxWeightKilograms)
		assert.Equal(t, kernel.MaxMoney, kernel.Money(math.MaxInt64/2).Times(w))
	})
}

func TestParseMoney(t *testing.T) {
	for in, want := range map[string]kernel.Money{
		"150.00": 15000,
		"150":    15000,
		"150.5":  15050,
		" 0 ":    0,
	} {
		got, err := kernel.ParseMoney(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "-1", "NaN", "Inf"} {
		_, err := kernel.ParseMoney(in)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
	}

	for _, in := range []string{"1e300", "92233720368547758.07"} {
		_, err := kernel.ParseMoney(in)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, in)
	}
}
