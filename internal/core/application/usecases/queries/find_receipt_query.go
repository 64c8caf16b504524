// Package queries contains the read operations over the delivery store.
// Queries never modify stored deliveries.
package queries

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrFindReceiptQueryIsNotConstructed = errors.New(
	"FindReceiptQuery must be created via NewFindReceiptQuery constructor",
)

// FindReceiptQuery looks up one parcel by sender name and tracking id, the
// pair printed on the receipt.
//
// Example:
//
//	query, err := NewFindReceiptQuery("Somchai", "12345")
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("No delivery matches that name and id")
//	}
type FindReceiptQuery struct {
	name string
	id   kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewFindReceiptQuery(name, id string) (FindReceiptQuery, error) {
	parsed, idErr := kernel.ParseTrackingID(id)

	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(nameErr, idErr); err != nil {
		return FindReceiptQuery{}, err
	}

	return FindReceiptQuery{
		name:  name,
		id:    parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q FindReceiptQuery) Validate() error {
	return q.guard.Validate(ErrFindReceiptQueryIsNotConstructed)
}

func (q FindReceiptQuery) Name() string {
	return q.name
}

func (q FindReceiptQuery) ID() kernel.TrackingID {
	return q.id
}
