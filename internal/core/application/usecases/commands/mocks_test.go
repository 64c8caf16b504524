package commands_test

import (
	"context"
	"testing"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryStore struct{ mock.Mock }

func (m *MockDeliveryStore) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryStore) ReadAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryStore) WriteAll(ctx context.Context, deliveries []*delivery.Delivery) error {
	args := m.Called(ctx, deliveries)
	return args.Error(0)
}

func (m *MockDeliveryStore) Append(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

var (
	pricing  = services.NewPricing(services.DefaultRatePerKilogram)
	bookedOn = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	fixedNow = clockAt(bookedOn)
)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequence(ids ...kernel.TrackingID) func() kernel.TrackingID {
	i := 0
	return func() kernel.TrackingID {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func restore(t *testing.T, id int, name string, to string, kg float64, status delivery.Status) *delivery.Delivery {
	t.Helper()

	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	from, err := kernel.NewCity("Bangkok")
	require.NoError(t, err)
	dest, err := kernel.NewCity(to)
	require.NoError(t, err)
	weight, err := kernel.NewWeight(kg)
	require.NoError(t, err)

	d, err := delivery.RestoreDelivery(trackingID, bookedOn, delivery.Details{
		Name:   name,
		Weight: weight,
		From:   from,
		To:     dest,
	}, pricing.CalculateAmount(to, weight), status)
	require.NoError(t, err)
	return d
}
