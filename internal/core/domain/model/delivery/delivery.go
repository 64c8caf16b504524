package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created through
	// NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrSameOriginAndDestination is the cause reported when from and to are the same city.
	ErrSameOriginAndDestination = errors.New("origin and destination must differ")
)

// Tariff prices a parcel for a destination. The domain service
// services.Pricing is the production implementation.
type Tariff interface {
	CalculateAmount(destination string, weight kernel.Weight) kernel.Money
}

// Details carries the sender-supplied fields of a delivery.
// Phone1, Phone2 and Email may be zero values (not supplied).
type Details struct {
	Name   string
	Phone1 kernel.Phone
	Phone2 kernel.Phone
	Email  kernel.Email
	Weight kernel.Weight
	From   kernel.City
	To     kernel.City
}

// Delivery is the aggregate root for one booked parcel.
//
// Delivery follows these invariants:
//   - Tracking id is within the five-digit range
//   - Date is a calendar date (midnight UTC)
//   - Name is non-blank
//   - From and To are valid and different cities
//   - Weight is positive
//   - Status is Pending or Delivered
type Delivery struct {
	id     kernel.TrackingID
	date   time.Time
	name   string
	phone1 kernel.Phone
	phone2 kernel.Phone
	email  kernel.Email
	weight kernel.Weight
	from   kernel.City
	to     kernel.City

	// amount is derived from (to, weight) by the tariff at creation and on every edit
	amount kernel.Money
	status Status

	isConstructed bool
}

// NewDelivery books a new parcel in Pending status and prices it with tariff.
//
// Example:
//
//	from, _ := kernel.NewCity("Bangkok")
//	to, _ := kernel.NewCity("Chiang Mai")
//	weight, _ := kernel.NewWeight(3)
//	d, err := delivery.NewDelivery(kernel.NewRandomTrackingID(), time.Now(), delivery.Details{
//	    Name: "Somchai", Weight: weight, From: from, To: to,
//	}, services.NewPricing(services.DefaultRatePerKilogram))
//	// d.Amount() == 150.00, d.Status() == delivery.Pending
func NewDelivery(id kernel.TrackingID, date time.Time, details Details, tariff Tariff) (*Delivery, error) {
	if tariff == nil {
		return nil, errs.NewValueIsRequiredError("tariff")
	}

	d := &Delivery{
		status:        Pending,
		isConstructed: true,
	}
	if err := d.apply(id, date, details); err != nil {
		return nil, err
	}

	d.amount = tariff.CalculateAmount(d.to.String(), d.weight)
	return d, nil
}

// RestoreDelivery rebuilds a persisted delivery, keeping its stored amount and status.
// All invariants are checked again; a failure means the stored data is corrupt.
func RestoreDelivery(
	id kernel.TrackingID,
	date time.Time,
	details Details,
	amount kernel.Money,
	status Status,
) (*Delivery, error) {
	d := &Delivery{isConstructed: true}

	var amountErr error
	if amount < 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}

	if err := errors.Join(d.apply(id, date, details), status.Validate(), amountErr); err != nil {
		return nil, err
	}

	d.amount = amount
	d.status = status
	return d, nil
}

// Validate ensures the Delivery was built by a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares deliveries by tracking id. Ids are not guaranteed unique
// across a store, so this is identity within one lookup, not globally.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id == other.id
}

func (d *Delivery) ID() kernel.TrackingID { return d.id }
func (d *Delivery) Date() time.Time       { return d.date }
func (d *Delivery) Name() string          { return d.name }
func (d *Delivery) Phone1() kernel.Phone  { return d.phone1 }
func (d *Delivery) Phone2() kernel.Phone  { return d.phone2 }
func (d *Delivery) Email() kernel.Email   { return d.email }
func (d *Delivery) Weight() kernel.Weight { return d.weight }
func (d *Delivery) From() kernel.City     { return d.from }
func (d *Delivery) To() kernel.City       { return d.to }
func (d *Delivery) Amount() kernel.Money  { return d.amount }
func (d *Delivery) Status() Status        { return d.status }

// Matches reports whether the delivery is the one identified by id and the
// sender name, compared case-insensitively.
func (d *Delivery) Matches(id kernel.TrackingID, name string) bool {
	return d.id == id && strings.EqualFold(d.name, strings.TrimSpace(name))
}

// Contains reports whether term occurs, case-insensitively, in the tracking id or the name.
func (d *Delivery) Contains(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(d.id.String(), term) ||
		strings.Contains(strings.ToLower(d.name), term)
}

// Checkout marks the delivery as Delivered.
//
// Checking out an already delivered parcel leaves it unchanged and returns an
// *errs.ObjectIsInTerminalStateError so the caller can report it.
func (d *Delivery) Checkout() error {
	newStatus, err := d.status.Checkout()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Edit replaces the supplied fields, keeps the others, and reprices the parcel.
// Either every change is applied or, on error, none is. Status is never touched.
func (d *Delivery) Edit(changes Changes, tariff Tariff) error {
	if tariff == nil {
		return errs.NewValueIsRequiredError("tariff")
	}

	next := *d
	if changes.Phone1 != nil {
		next.phone1 = *changes.Phone1
	}
	if changes.Phone2 != nil {
		next.phone2 = *changes.Phone2
	}
	if changes.Email != nil {
		next.email = *changes.Email
	}

	var weightErr, routeErr error
	if changes.Weight != nil {
		weightErr = next.setWeight(*changes.Weight)
	}
	from, to := d.from, d.to
	if changes.From != nil {
		from = *changes.From
	}
	if changes.To != nil {
		to = *changes.To
	}
	routeErr = next.setRoute(from, to)

	if err := errors.Join(weightErr, routeErr); err != nil {
		return err
	}

	next.amount = tariff.CalculateAmount(next.to.String(), next.weight)
	*d = next
	return nil
}

func (d *Delivery) apply(id kernel.TrackingID, date time.Time, details Details) error {
	d.phone1 = details.Phone1
	d.phone2 = details.Phone2
	d.email = details.Email

	return errors.Join(
		d.setID(id),
		d.setDate(date),
		d.setName(details.Name),
		d.setWeight(details.Weight),
		d.setRoute(details.From, details.To),
	)
}

func (d *Delivery) setID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setDate keeps only the calendar date of t, as seen in t's own location.
func (d *Delivery) setDate(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	y, m, day := t.Date()
	d.date = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d *Delivery) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Delivery) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	d.weight = weight
	return nil
}

func (d *Delivery) setRoute(from, to kernel.City) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return errs.NewValueIsInvalidErrorWithCause("route", fmt.Errorf("%w: %s", ErrSameOriginAndDestination, from))
	}
	d.from = from
	d.to = to
	return nil
}
