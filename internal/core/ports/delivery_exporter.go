package ports

import (
	"context"

	"parcels/internal/core/domain/model/delivery"
)

// DeliveryExporter writes a snapshot of deliveries to an external document.
type DeliveryExporter interface {
	// Export writes deliveries to path, replacing any existing file.
	Export(ctx context.Context, path string, deliveries []*delivery.Delivery) error
}
