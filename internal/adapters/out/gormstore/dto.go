// Package gormstore keeps deliveries in a relational table through GORM.
// It serves the same port as the CSV store and works with SQLite and PostgreSQL.
package gormstore

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

const dateLayout = time.DateOnly

// DeliveryDTO is one row of the deliveries table. Seq preserves insertion
// order; tracking ids are not unique and cannot serve as the key.
type DeliveryDTO struct {
	Seq          uint64 `gorm:"primaryKey;autoIncrement"`
	Date         string `gorm:"size:10;not null"`
	TrackingID   int    `gorm:"index;not null"`
	Name         string `gorm:"not null"`
	Phone1       string `gorm:"size:10"`
	Phone2       string `gorm:"size:10"`
	Email        string
	Weight       float64 `gorm:"not null"`
	FromCity     string  `gorm:"size:32;not null"`
	ToCity       string  `gorm:"size:32;not null"`
	AmountSatang int64   `gorm:"not null"`
	Status       string  `gorm:"size:16;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		Date:         d.Date().Format(dateLayout),
		TrackingID:   int(d.ID()),
		Name:         d.Name(),
		Phone1:       d.Phone1().String(),
		Phone2:       d.Phone2().String(),
		Email:        d.Email().String(),
		Weight:       d.Weight().Kilograms(),
		FromCity:     d.From().String(),
		ToCity:       d.To().String(),
		AmountSatang: d.Amount().Satang(),
		Status:       d.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	date, dateErr := time.Parse(dateLayout, dto.Date)
	if dateErr != nil {
		dateErr = errs.NewValueIsInvalidErrorWithCause("date", dateErr)
	}
	id, idErr := kernel.NewTrackingID(dto.TrackingID)
	phone1, phone1Err := kernel.NewPhone(dto.Phone1)
	phone2, phone2Err := kernel.NewPhone(dto.Phone2)
	email, emailErr := kernel.NewEmail(dto.Email)
	weight, weightErr := kernel.NewWeight(dto.Weight)
	from, fromErr := kernel.NewCity(dto.FromCity)
	to, toErr := kernel.NewCity(dto.ToCity)
	status, statusErr := delivery.ParseStatus(dto.Status)

	if err := errors.Join(dateErr, idErr, phone1Err, phone2Err, emailErr,
		weightErr, fromErr, toErr, statusErr); err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, date, delivery.Details{
		Name:   dto.Name,
		Phone1: phone1,
		Phone2: phone2,
		Email:  email,
		Weight: weight,
		From:   from,
		To:     to,
	}, kernel.Money(dto.AmountSatang), status)
}
