package commands

import (
	"context"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// DeleteDeliveryCommandHandler removes deliveries by tracking id and rewrites
// the store with the remaining rows in their original order.
type DeleteDeliveryCommandHandler struct {
	store ports.DeliveryStore
}

func NewDeleteDeliveryCommandHandler(store ports.DeliveryStore) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{store: store}
}

// Handle returns the number of removed deliveries. When nothing matches the
// store is left untouched and an *errs.ObjectNotFoundError is returned.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]*delivery.Delivery, 0, len(all))
	for _, d := range all {
		if d.ID() != cmd.ID() {
			kept = append(kept, d)
		}
	}

	removed := len(all) - len(kept)
	if removed == 0 {
		return 0, errs.NewObjectNotFoundError("delivery", cmd.ID())
	}

	if err = h.store.WriteAll(ctx, kept); err != nil {
		return 0, err
	}

	return removed, nil
}
