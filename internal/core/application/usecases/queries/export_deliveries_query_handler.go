package queries

import (
	"context"

	"parcels/internal/core/ports"
)

// ExportDeliveriesQueryHandler reads the store and hands every delivery to
// the exporter. An empty store still produces a sheet with the header row.
type ExportDeliveriesQueryHandler struct {
	store    ports.DeliveryStore
	exporter ports.DeliveryExporter
}

func NewExportDeliveriesQueryHandler(
	store ports.DeliveryStore,
	exporter ports.DeliveryExporter,
) ExportDeliveriesQueryHandler {
	return ExportDeliveriesQueryHandler{store: store, exporter: exporter}
}

// Handle returns the number of exported deliveries.
func (h ExportDeliveriesQueryHandler) Handle(ctx context.Context, query ExportDeliveriesQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	all, err := h.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = h.exporter.Export(ctx, query.Path(), all); err != nil {
		return 0, err
	}

	return len(all), nil
}
