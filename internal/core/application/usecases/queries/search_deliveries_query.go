package queries

import (
	"errors"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrSearchDeliveriesQueryIsNotConstructed = errors.New(
	"SearchDeliveriesQuery must be created via NewSearchDeliveriesQuery constructor",
)

// SearchDeliveriesQuery finds deliveries whose tracking id or sender name
// contains a term, ignoring case.
//
// Example:
//
//	query, _ := NewSearchDeliveriesQuery("chai")
//	found, err := handler.Handle(ctx, query)
//	// found holds "Somchai", "Chaiwat", ... and any id containing "chai" (none)
type SearchDeliveriesQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchDeliveriesQuery requires a non-blank term. Surrounding spaces are trimmed.
func NewSearchDeliveriesQuery(term string) (SearchDeliveriesQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchDeliveriesQuery{}, errs.NewValueIsRequiredError("search term")
	}

	return SearchDeliveriesQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q SearchDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrSearchDeliveriesQueryIsNotConstructed)
}

func (q SearchDeliveriesQuery) Term() string {
	return q.term
}
