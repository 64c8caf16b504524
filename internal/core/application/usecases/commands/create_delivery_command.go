package commands

import (
	"errors"
	"fmt"
	"strings"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryInput is the raw, user-supplied booking form.
// Phone1, Phone2 and Email may be left empty.
type CreateDeliveryInput struct {
	Name   string
	Phone1 string
	Phone2 string
	Email  string
	Weight string
	From   string
	To     string
}

// CreateDeliveryCommand represents a request to book a new parcel.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(CreateDeliveryInput{
//	    Name: "Somchai", Phone1: "0812345678", Weight: "3", From: "Bangkok", To: "Chiang Mai",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	details delivery.Details

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand parses and validates every field of the form.
// All field errors are reported together, joined with errors.Join.
func NewCreateDeliveryCommand(in CreateDeliveryInput) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(in.Name),
		cmd.setContacts(in.Phone1, in.Phone2, in.Email),
		cmd.setWeight(in.Weight),
		cmd.setRoute(in.From, in.To),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// Details returns the validated booking fields.
func (c CreateDeliveryCommand) Details() delivery.Details {
	return c.details
}

func (c *CreateDeliveryCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.details.Name = name
	return nil
}

func (c *CreateDeliveryCommand) setContacts(phone1, phone2, email string) error {
	p1, err1 := kernel.NewPhone(phone1)
	p2, err2 := kernel.NewPhone(phone2)
	e, err3 := kernel.NewEmail(email)
	if err := errors.Join(err1, err2, err3); err != nil {
		return err
	}

	c.details.Phone1 = p1
	c.details.Phone2 = p2
	c.details.Email = e
	return nil
}

func (c *CreateDeliveryCommand) setWeight(weight string) error {
	w, err := kernel.ParseWeight(weight)
	if err != nil {
		return err
	}
	c.details.Weight = w
	return nil
}

func (c *CreateDeliveryCommand) setRoute(from, to string) error {
	fromCity, fromErr := kernel.NewCity(from)
	toCity, toErr := kernel.NewCity(to)
	if err := errors.Join(fromErr, toErr); err != nil {
		return err
	}
	if fromCity.IsEqual(toCity) {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("%w: %s", delivery.ErrSameOriginAndDestination, fromCity))
	}

	c.details.From = fromCity
	c.details.To = toCity
	return nil
}
