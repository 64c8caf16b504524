package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
)

// maxIDAttempts bounds the search for an unused tracking id when ids must be unique.
const maxIDAttempts = 32

var ErrTrackingIDsExhausted = errors.New("no unused tracking id found")

// CreateDeliveryCommandHandler books new parcels. It assigns a tracking id,
// stamps the booking date, prices the parcel and appends it to the store.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(store, pricing, ids, clock, true)
//	d, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	fmt.Printf("tracking id %s, amount %s\n", d.ID(), d.Amount())
type CreateDeliveryCommandHandler struct {
	store     ports.DeliveryStore
	tariff    delivery.Tariff
	ids       IDGenerator
	clock     Clock
	uniqueIDs bool
}

// NewCreateDeliveryCommandHandler creates a booking handler. When uniqueIDs is
// set, generated ids that collide with an existing delivery are drawn again.
func NewCreateDeliveryCommandHandler(
	store ports.DeliveryStore,
	tariff delivery.Tariff,
	ids IDGenerator,
	clock Clock,
	uniqueIDs bool,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		store:     store,
		tariff:    tariff,
		ids:       ids,
		clock:     clock,
		uniqueIDs: uniqueIDs,
	}
}

// Handle books the parcel and returns the stored delivery, ready for the receipt.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id, err := h.nextID(ctx)
	if err != nil {
		return nil, err
	}

	d, err := delivery.NewDelivery(id, h.clock.Now(), cmd.Details(), h.tariff)
	if err != nil {
		return nil, err
	}

	if err = h.store.Append(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (h *CreateDeliveryCommandHandler) nextID(ctx context.Context) (kernel.TrackingID, error) {
	if !h.uniqueIDs {
		return h.ids.NextID(), nil
	}

	existing, err := h.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	taken := make(map[kernel.TrackingID]struct{}, len(existing))
	for _, d := range existing {
		taken[d.ID()] = struct{}{}
	}

	for range maxIDAttempts {
		id := h.ids.NextID()
		if _, ok := taken[id]; !ok {
			return id, nil
		}
	}

	return 0, ErrTrackingIDsExhausted
}
