// Package csvstore keeps deliveries in a flat CSV file, one row per delivery,
// under a fixed header row.
package csvstore

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

const dateLayout = time.DateOnly

// header is the first row of every store file. Column order is part of the format.
var header = []string{"Date", "ID", "Name", "Phone1", "Phone2", "Email", "Weight", "From", "To", "Amount", "Status"}

const (
	colDate = iota
	colID
	colName
	colPhone1
	colPhone2
	colEmail
	colWeight
	colFrom
	colTo
	colAmount
	colStatus
)

func checkHeader(row []string) error {
	if slices.Equal(row, header) {
		return nil
	}
	return errs.NewVersionIsInvalidErrorWithCause("header",
		fmt.Errorf("got %q, want %q", strings.Join(row, ","), strings.Join(header, ",")))
}

// fromDomain renders a delivery as a CSV row.
func fromDomain(d *delivery.Delivery) []string {
	row := make([]string, len(header))
	row[colDate] = d.Date().Format(dateLayout)
	row[colID] = d.ID().String()
	row[colName] = d.Name()
	row[colPhone1] = d.Phone1().String()
	row[colPhone2] = d.Phone2().String()
	row[colEmail] = d.Email().String()
	row[colWeight] = d.Weight().String()
	row[colFrom] = d.From().String()
	row[colTo] = d.To().String()
	row[colAmount] = d.Amount().String()
	row[colStatus] = d.Status().String()
	return row
}

// toDomain parses a CSV row, re-checking every domain invariant.
func toDomain(row []string) (*delivery.Delivery, error) {
	if len(row) != len(header) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	date, dateErr := time.Parse(dateLayout, row[colDate])
	if dateErr != nil {
		dateErr = errs.NewValueIsInvalidErrorWithCause("date", dateErr)
	}
	id, idErr := kernel.ParseTrackingID(row[colID])
	phone1, phone1Err := kernel.NewPhone(row[colPhone1])
	phone2, phone2Err := kernel.NewPhone(row[colPhone2])
	email, emailErr := kernel.NewEmail(row[colEmail])
	weight, weightErr := kernel.ParseWeight(row[colWeight])
	from, fromErr := kernel.NewCity(row[colFrom])
	to, toErr := kernel.NewCity(row[colTo])
	amount, amountErr := kernel.ParseMoney(row[colAmount])
	status, statusErr := delivery.ParseStatus(row[colStatus])

	if err := errors.Join(dateErr, idErr, phone1Err, phone2Err, emailErr,
		weightErr, fromErr, toErr, amountErr, statusErr); err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, date, delivery.Details{
		Name:   row[colName],
		Phone1: phone1,
		Phone2: phone2,
		Email:  email,
		Weight: weight,
		From:   from,
		To:     to,
	}, amount, status)
}
