package kernel_test

import (
	"testing"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		lo, err := kernel.NewTrackingID(10000)
		require.NoError(t, err)
		assert.Equal(t, kernel.TrackingIDMin, lo)

		hi, err := kernel.NewTrackingID(99999)
		require.NoError(t, err)
		assert.Equal(t, kernel.TrackingIDMax, hi)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, v := range []int{0, 9999, 100000} {
			_, err := kernel.NewTrackingID(v)

			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, v, rangeErr.Value)
		}
	})
}

func TestParseTrackingID(t *testing.T) {
	t.Run("five digits", func(t *testing.T) {
		id, err := kernel.ParseTrackingID(" 12345 ")

		require.NoError(t, err)
		assert.Equal(t, "12345", id.String())
	})

	t.Run("blank", func(t *testing.T) {
		_, err := kernel.ParseTrackingID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non canonical forms are rejected", func(t *testing.T) {
		for _, s := range []string{"012345", "+12345", "12a45", "1.5"} {
			_, err := kernel.ParseTrackingID(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})

	t.Run("too short", func(t *testing.T) {
		_, err := kernel.ParseTrackingID("42")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewRandomTrackingID(t *testing.T) {
	for range 1000 {
		require.NoError(t, kernel.NewRandomTrackingID().Validate())
	}
}
