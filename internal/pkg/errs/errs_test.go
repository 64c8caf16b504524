package errs_test

import (
	"errors"
	"os"
	"testing"

	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("delivery", "12345")

		assert.Equal(t, "delivery", err.ParamName)
		assert.Equal(t, "12345", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: delivery 12345", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("name does not match")
		err := errs.NewObjectNotFoundErrorWithCause("delivery", "12345", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: delivery 12345 (cause: name does not match)", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("delivery", 54321)
		assert.Equal(t, "object not found: delivery 54321", err.Error())
	})
}

func TestObjectIsInTerminalStateError(t *testing.T) {
	t.Run("NewObjectIsInTerminalStateError", func(t *testing.T) {
		err := errs.NewObjectIsInTerminalStateError("delivery 12345", "Delivered")

		assert.Equal(t, "delivery 12345", err.ParamName)
		assert.Equal(t, "Delivered", err.State)
		assert.Equal(t, "object is in terminal state: delivery 12345 is already Delivered", err.Error())
		assert.Equal(t, errs.ErrObjectIsInTerminalState, err.Unwrap())
	})

	t.Run("NewObjectIsInTerminalStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("checkout")
		err := errs.NewObjectIsInTerminalStateErrorWithCause("delivery", "Delivered", cause)

		assert.Equal(t,
			"object is in terminal state: delivery is already Delivered (cause: checkout)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid}, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing @")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: missing @)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, cause)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("tracking id", 123, 10000, 99999)

		assert.Equal(t, "tracking id", err.ParamName)
		assert.Equal(t, 123, err.Value)
		assert.Equal(t, 10000, err.Min)
		assert.Equal(t, 99999, err.Max)
		assert.Equal(t,
			"value is out of range: tracking id is 123, min value is 10000, max value is 99999",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("too short")
		err := errs.NewValueIsOutOfRangeErrorWithCause("tracking id", 7, 10000, 99999, cause)

		assert.Equal(t,
			"value is out of range: tracking id is 7, min value is 10000, max value is 99999 (cause: too short)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank"))
	assert.Equal(t, "value is required: name (cause: blank)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("header")
	assert.Equal(t, "version is invalid: header", err.Error())

	withCause := errs.NewVersionIsInvalidErrorWithCause("header", errors.New("unexpected column"))
	assert.Equal(t, "version is invalid: header (cause: unexpected column)", withCause.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, withCause.Unwrap())
}

func TestStorageError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStorageError("read", "deliveries.csv")

		assert.Equal(t, "storage failure: read deliveries.csv", err.Error())
		require.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("cause stays reachable", func(t *testing.T) {
		err := errs.NewStorageErrorWithCause("write", "deliveries.csv", os.ErrPermission)

		assert.Equal(t, "storage failure: write deliveries.csv (cause: permission denied)", err.Error())
		require.ErrorIs(t, err, errs.ErrStorage)
		require.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("wrapped typed cause can be extracted", func(t *testing.T) {
		err := errs.NewStorageErrorWithCause("decode", "deliveries.csv", errs.NewVersionIsInvalidError("header"))

		var versionErr *errs.VersionIsInvalidError
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, "header", versionErr.ParamName)
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("delivery", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectIsInTerminalStateError("delivery", "Delivered"), errs.ErrObjectIsInTerminalState)
	require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("id", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("header"), errs.ErrVersionIsInvalid)

	joined := errors.Join(errs.NewValueIsInvalidError("phone1"), errs.NewValueIsRequiredError("name"))
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
}
