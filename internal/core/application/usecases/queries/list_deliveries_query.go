package queries

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery returns every stored delivery in insertion order.
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}
