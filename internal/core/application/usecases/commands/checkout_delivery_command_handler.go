package commands

import (
	"context"
	"fmt"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// CheckoutDeliveryCommandHandler marks a pending parcel as delivered.
//
// Example:
//
//	cmd, _ := NewCheckoutDeliveryCommand("12345", "Somchai")
//	d, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectIsInTerminalState) {
//	    fmt.Println("already delivered")
//	}
type CheckoutDeliveryCommandHandler struct {
	store ports.DeliveryStore
}

func NewCheckoutDeliveryCommandHandler(store ports.DeliveryStore) CheckoutDeliveryCommandHandler {
	return CheckoutDeliveryCommandHandler{store: store}
}

// Handle checks out the first delivery matching the id and name.
// An already delivered parcel is returned together with an
// *errs.ObjectIsInTerminalStateError and the store is not rewritten.
func (h *CheckoutDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CheckoutDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	d := findMatching(all, cmd)
	if d == nil {
		return nil, errs.NewObjectNotFoundError("delivery", lookupKey(cmd.ID(), cmd.Name()))
	}

	if err = d.Checkout(); err != nil {
		return d, err
	}

	if err = h.store.WriteAll(ctx, all); err != nil {
		return nil, err
	}

	return d, nil
}

type lookup interface {
	ID() kernel.TrackingID
	Name() string
}

func findMatching(all []*delivery.Delivery, key lookup) *delivery.Delivery {
	for _, d := range all {
		if d.Matches(key.ID(), key.Name()) {
			return d
		}
	}
	return nil
}

func lookupKey(id fmt.Stringer, name string) string {
	return fmt.Sprintf("%s named %q", id, name)
}
