package commands_test

import (
	"errors"
	"testing"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return([]*delivery.Delivery{}, nil).Once()
	store.On("Append", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(12345)), commands.ClockFunc(fixedNow), true)

	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.TrackingID(12345), d.ID())
	assert.Equal(t, bookedOn, d.Date())
	assert.Equal(t, "Somchai", d.Name())
	assert.Equal(t, "150.00", d.Amount().String())
	assert.Equal(t, delivery.Pending, d.Status())
	store.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_StoresCalendarDateOnly(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	late := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
	store := new(MockDeliveryStore)
	store.On("Append", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(12345)), commands.ClockFunc(clockAt(late)), false)

	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, bookedOn, d.Date())
}

func TestCreateDeliveryCommandHandler_Handle_SkipsTakenIDs(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	existing := []*delivery.Delivery{
		restore(t, 11111, "Anan", "Phuket", 1, delivery.Pending),
		restore(t, 22222, "Malee", "Hat Yai", 2, delivery.Delivered),
	}
	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return(existing, nil).Once()
	store.On("Append", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(11111, 22222, 33333)), commands.ClockFunc(fixedNow), true)

	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.TrackingID(33333), d.ID())
}

func TestCreateDeliveryCommandHandler_Handle_AllowsDuplicatesWhenNotUnique(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	store := new(MockDeliveryStore)
	store.On("Append", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(11111)), commands.ClockFunc(fixedNow), false)

	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.TrackingID(11111), d.ID())
	store.AssertNotCalled(t, "ReadAll", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_IDsExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return([]*delivery.Delivery{
		restore(t, 11111, "Anan", "Phuket", 1, delivery.Pending),
	}, nil).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(11111)), commands.ClockFunc(fixedNow), true)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrTrackingIDsExhausted)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	store := new(MockDeliveryStore)
	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(12345)), commands.ClockFunc(fixedNow), true)

	_, err := h.Handle(t.Context(), commands.CreateDeliveryCommand{})
	require.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	store.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	appendErr := errors.New("disk full")
	store := new(MockDeliveryStore)
	store.On("Append", ctx, mock.Anything).Return(appendErr).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(12345)), commands.ClockFunc(fixedNow), false)

	d, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, appendErr)
	assert.Nil(t, d)
}

func TestCreateDeliveryCommandHandler_Handle_ReadError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(validInput())
	require.NoError(t, err)

	readErr := errors.New("corrupt file")
	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return(nil, readErr).Once()

	h := commands.NewCreateDeliveryCommandHandler(
		store, pricing, commands.IDGeneratorFunc(sequence(12345)), commands.ClockFunc(fixedNow), true)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, readErr)
}
