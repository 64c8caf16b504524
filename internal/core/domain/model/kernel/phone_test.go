package kernel_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"0612345678", "0812345678", "0998765432", ""}
	for _, s := range valid {
		t.Run("accepts "+s, func(t *testing.T) {
			assert.True(t, kernel.IsValidPhone(s))
		})
	}

	invalid := map[string]string{
		"too short":            "081234567",
		"too long":             "08123456789",
		"wrong second digit":   "0712345678",
		"missing leading zero": "8812345678",
		"letters":              "08123a5678",
		"spaces":               "081 234 5678",
		"international prefix": "+66812345678",
	}
	for name, s := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			assert.False(t, kernel.IsValidPhone(s))
		})
	}
}

func TestNewPhone(t *testing.T) {
	t.Run("trims and keeps the number", func(t *testing.T) {
		p, err := kernel.NewPhone("  0812345678 ")

		require.NoError(t, err)
		assert.Equal(t, "0812345678", p.String())
		assert.False(t, p.IsEmpty())
	})

	t.Run("empty is an absent phone", func(t *testing.T) {
		p, err := kernel.NewPhone("")

		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})

	t.Run("invalid number is a validation error", func(t *testing.T) {
		_, err := kernel.NewPhone("12345")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"12345"`)
	})
}
