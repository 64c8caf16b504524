package queries

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/ports"
)

// ErrNoDeliveries is returned by ListDeliveriesQueryHandler when the store is
// empty, so the caller can print a dedicated message instead of an empty table.
var ErrNoDeliveries = errors.New("no deliveries")

type ListDeliveriesQueryHandler struct {
	store ports.DeliveryStore
}

func NewListDeliveriesQueryHandler(store ports.DeliveryStore) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{store: store}
}

func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return []*delivery.Delivery{}, ErrNoDeliveries
	}

	return all, nil
}
