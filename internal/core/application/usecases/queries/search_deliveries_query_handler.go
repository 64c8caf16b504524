package queries

import (
	"context"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/ports"
)

type SearchDeliveriesQueryHandler struct {
	store ports.DeliveryStore
}

func NewSearchDeliveriesQueryHandler(store ports.DeliveryStore) SearchDeliveriesQueryHandler {
	return SearchDeliveriesQueryHandler{store: store}
}

// Handle returns matches in store order; no match yields an empty, non-nil slice.
func (h SearchDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query SearchDeliveriesQuery,
) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]*delivery.Delivery, 0)
	for _, d := range all {
		if d.Contains(query.Term()) {
			found = append(found, d)
		}
	}

	return found, nil
}
