package commands

import (
	"context"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// EditDeliveryCommandHandler applies an edit to the first matching delivery
// and rewrites the store.
type EditDeliveryCommandHandler struct {
	store  ports.DeliveryStore
	tariff delivery.Tariff
}

func NewEditDeliveryCommandHandler(store ports.DeliveryStore, tariff delivery.Tariff) EditDeliveryCommandHandler {
	return EditDeliveryCommandHandler{store: store, tariff: tariff}
}

// Handle returns the edited delivery. An edit with no changes still reprices
// the parcel with the current rate.
func (h *EditDeliveryCommandHandler) Handle(ctx context.Context, cmd EditDeliveryCommand) (*delivery.Delivery, error) {
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

	if err = d.Edit(cmd.Changes(), h.tariff); err != nil {
		return nil, err
	}

	if err = h.store.WriteAll(ctx, all); err != nil {
		return nil, err
	}

	return d, nil
}
