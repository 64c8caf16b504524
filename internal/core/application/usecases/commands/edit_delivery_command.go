package commands

import (
	"errors"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrEditDeliveryCommandIsNotConstructed = errors.New(
	"EditDeliveryCommand must be created via NewEditDeliveryCommand constructor",
)

// EditDeliveryInput holds the raw replacement values. A nil field keeps the
// current value; a pointer to "" clears an optional phone or email.
type EditDeliveryInput struct {
	Phone1 *string
	Phone2 *string
	Email  *string
	Weight *string
	From   *string
	To     *string
}

// EditDeliveryCommand changes contact details, weight or route of the
// delivery identified by tracking id and sender name. The amount is
// recalculated; status is kept.
type EditDeliveryCommand struct { //nolint:recvcheck //using for validation
	id      kernel.TrackingID
	name    string
	changes delivery.Changes

	guard guard.ConstructorGuard
}

func NewEditDeliveryCommand(id, name string, in EditDeliveryInput) (EditDeliveryCommand, error) {
	cmd := EditDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	var keyErr error
	cmd.id, cmd.name, keyErr = parseLookupKey(id, name)

	if err := errors.Join(keyErr, cmd.setChanges(in)); err != nil {
		return EditDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c EditDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryCommandIsNotConstructed)
}

func (c EditDeliveryCommand) ID() kernel.TrackingID {
	return c.id
}

func (c EditDeliveryCommand) Name() string {
	return c.name
}

func (c EditDeliveryCommand) Changes() delivery.Changes {
	return c.changes
}

func (c *EditDeliveryCommand) setChanges(in EditDeliveryInput) error {
	var errList []error
	collect := func(err error) {
		if err != nil {
			errList = append(errList, err)
		}
	}

	c.changes.Phone1 = parseOptional(in.Phone1, kernel.NewPhone, collect)
	c.changes.Phone2 = parseOptional(in.Phone2, kernel.NewPhone, collect)
	c.changes.Email = parseOptional(in.Email, kernel.NewEmail, collect)
	c.changes.Weight = parseOptional(in.Weight, kernel.ParseWeight, collect)
	c.changes.From = parseOptional(in.From, kernel.NewCity, collect)
	c.changes.To = parseOptional(in.To, kernel.NewCity, collect)

	return errors.Join(errList...)
}

func parseOptional[T any](raw *string, parse func(string) (T, error), collect func(error)) *T {
	if raw == nil {
		return nil
	}
	v, err := parse(*raw)
	if err != nil {
		collect(err)
		return nil
	}
	return &v
}
