package queries

import (
	"context"
	"errors"

	"parcels/internal/core/ports"
	"parcels/internal/pkg/guard"
)

var ErrCountDeliveriesQueryIsNotConstructed = errors.New(
	"CountDeliveriesQuery must be created via NewCountDeliveriesQuery constructor",
)

// CountDeliveriesQuery counts stored deliveries, duplicates included.
type CountDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewCountDeliveriesQuery() CountDeliveriesQuery {
	return CountDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q CountDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrCountDeliveriesQueryIsNotConstructed)
}

type CountDeliveriesQueryHandler struct {
	store ports.DeliveryStore
}

func NewCountDeliveriesQueryHandler(store ports.DeliveryStore) CountDeliveriesQueryHandler {
	return CountDeliveriesQueryHandler{store: store}
}

// Handle returns 0 for an empty or missing store.
func (h CountDeliveriesQueryHandler) Handle(ctx context.Context, query CountDeliveriesQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	return len(all), nil
}
