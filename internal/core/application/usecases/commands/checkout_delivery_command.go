package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCheckoutDeliveryCommandIsNotConstructed = errors.New(
	"CheckoutDeliveryCommand must be created via NewCheckoutDeliveryCommand constructor",
)

// CheckoutDeliveryCommand marks the parcel identified by tracking id and
// sender name as delivered.
type CheckoutDeliveryCommand struct { //nolint:recvcheck //using for validation
	id   kernel.TrackingID
	name string

	guard guard.ConstructorGuard
}

func NewCheckoutDeliveryCommand(id, name string) (CheckoutDeliveryCommand, error) {
	cmd := CheckoutDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	var err error
	cmd.id, cmd.name, err = parseLookupKey(id, name)
	if err != nil {
		return CheckoutDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutDeliveryCommandIsNotConstructed)
}

func (c CheckoutDeliveryCommand) ID() kernel.TrackingID {
	return c.id
}

func (c CheckoutDeliveryCommand) Name() string {
	return c.name
}

// parseLookupKey validates the (tracking id, sender name) pair shared by
// checkout, edit and receipt lookups.
func parseLookupKey(id, name string) (kernel.TrackingID, string, error) {
	parsed, idErr := kernel.ParseTrackingID(id)

	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(idErr, nameErr); err != nil {
		return 0, "", err
	}
	return parsed, name, nil
}
