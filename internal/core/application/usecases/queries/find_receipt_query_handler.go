package queries

import (
	"context"
	"fmt"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

type FindReceiptQueryHandler struct {
	store ports.DeliveryStore
}

func NewFindReceiptQueryHandler(store ports.DeliveryStore) FindReceiptQueryHandler {
	return FindReceiptQueryHandler{store: store}
}

// Handle returns the first delivery matching the query, in store order.
func (h FindReceiptQueryHandler) Handle(ctx context.Context, query FindReceiptQuery) (*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range all {
		if d.Matches(query.ID(), query.Name()) {
			return d, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("delivery", fmt.Sprintf("%s named %q", query.ID(), query.Name()))
}
