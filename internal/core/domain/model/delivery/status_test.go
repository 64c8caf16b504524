package delivery_test

import (
	"fmt"
	"testing"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(delivery.Unknown))
	assert.Equal(t, 1, int(delivery.Pending))
	assert.Equal(t, 2, int(delivery.Delivered))
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, delivery.Pending.Validate())
	require.NoError(t, delivery.Delivered.Validate())

	for _, s := range []delivery.Status{delivery.Unknown, delivery.Status(-1), delivery.Status(3)} {
		t.Run(fmt.Sprintf("rejects %d", int(s)), func(t *testing.T) {
			err := s.Validate()

			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "is not a valid status")
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", delivery.Pending.String())
	assert.Equal(t, "Delivered", delivery.Delivered.String())
	assert.Equal(t, "Unknown", delivery.Unknown.String())
	assert.Equal(t, "Unknown", delivery.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips valid statuses", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Pending, delivery.Delivered} {
			parsed, err := delivery.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			_, err := delivery.ParseStatus(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_Checkout(t *testing.T) {
	t.Run("pending becomes delivered", func(t *testing.T) {
		next, err := delivery.Pending.Checkout()

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, next)
	})

	t.Run("delivered stays delivered and reports it", func(t *testing.T) {
		next, err := delivery.Delivered.Checkout()

		require.ErrorIs(t, err, errs.ErrObjectIsInTerminalState)
		assert.Equal(t, delivery.Delivered, next)
	})

	t.Run("unknown cannot be checked out", func(t *testing.T) {
		next, err := delivery.Unknown.Checkout()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Unknown, next)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, delivery.Pending.IsTerminal())
	assert.True(t, delivery.Delivered.IsTerminal())
}
