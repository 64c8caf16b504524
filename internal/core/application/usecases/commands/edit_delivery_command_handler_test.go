package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewEditDeliveryCommand(t *testing.T) {
	t.Run("only supplied fields become changes", func(t *testing.T) {
		cmd, err := commands.NewEditDeliveryCommand("11111", "Anan", commands.EditDeliveryInput{
			Phone2: ptr(""),
			Weight: ptr("2.5"),
			To:     ptr("Chiang Rai"),
		})
		require.NoError(t, err)

		changes := cmd.Changes()
		assert.Nil(t, changes.Phone1)
		require.NotNil(t, changes.Phone2)
		assert.True(t, changes.Phone2.IsEmpty())
		assert.Nil(t, changes.Email)
		require.NotNil(t, changes.Weight)
		assert.Equal(t, "2.5", changes.Weight.String())
		assert.Nil(t, changes.From)
		require.NotNil(t, changes.To)
		assert.Equal(t, "Chiang Rai", changes.To.String())
	})

	t.Run("no changes", func(t *testing.T) {
		cmd, err := commands.NewEditDeliveryCommand("11111", "Anan", commands.EditDeliveryInput{})
		require.NoError(t, err)
		assert.True(t, cmd.Changes().IsEmpty())
	})

	t.Run("invalid values are rejected together", func(t *testing.T) {
		_, err := commands.NewEditDeliveryCommand("11111", "Anan", commands.EditDeliveryInput{
			Phone1: ptr("555"),
			Weight: ptr(""),
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEditDeliveryCommandHandler_Handle_Reprices(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditDeliveryCommand("11111", "anan", commands.EditDeliveryInput{
		Weight: ptr("4"),
		To:     ptr("Khon Kaen"),
	})
	require.NoError(t, err)

	target := restore(t, 11111, "Anan", "Phuket", 1, delivery.Delivered)
	all := []*delivery.Delivery{target}

	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return(all, nil).Once()
	store.On("WriteAll", ctx, all).Return(nil).Once()

	h := commands.NewEditDeliveryCommandHandler(store, pricing)
	d, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Khon Kaen", d.To().String())
	assert.Equal(t, "Bangkok", d.From().String())
	assert.Equal(t, "200.00", d.Amount().String())
	assert.Equal(t, delivery.Delivered, d.Status())
	store.AssertExpectations(t)
}

func TestEditDeliveryCommandHandler_Handle_SameRouteLeavesDeliveryUntouched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditDeliveryCommand("11111", "Anan", commands.EditDeliveryInput{
		Weight: ptr("9"),
		To:     ptr("Bangkok"),
	})
	require.NoError(t, err)

	target := restore(t, 11111, "Anan", "Phuket", 1, delivery.Pending)
	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return([]*delivery.Delivery{target}, nil).Once()

	h := commands.NewEditDeliveryCommandHandler(store, pricing)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, delivery.ErrSameOriginAndDestination)
	assert.Equal(t, "Phuket", target.To().String())
	assert.Equal(t, "1", target.Weight().String())
	store.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything)
}

func TestEditDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEditDeliveryCommand("33333", "Anan", commands.EditDeliveryInput{})
	require.NoError(t, err)

	store := new(MockDeliveryStore)
	store.On("ReadAll", ctx).Return([]*delivery.Delivery{}, nil).Once()

	h := commands.NewEditDeliveryCommandHandler(store, pricing)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestEditDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewEditDeliveryCommandHandler(new(MockDeliveryStore), pricing)
	_, err := h.Handle(t.Context(), commands.EditDeliveryCommand{})
	require.ErrorIs(t, err, commands.ErrEditDeliveryCommandIsNotConstructed)
}
