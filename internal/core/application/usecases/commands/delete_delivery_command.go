package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand cancels every delivery carrying a tracking id.
// Unlike checkout and edit, cancellation is keyed by id alone.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	id kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(id string) (DeleteDeliveryCommand, error) {
	cmd := DeleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) ID() kernel.TrackingID {
	return c.id
}

func (c *DeleteDeliveryCommand) setID(id string) error {
	parsed, err := kernel.ParseTrackingID(id)
	if err != nil {
		return err
	}
	c.id = parsed
	return nil
}
