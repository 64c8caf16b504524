package gormstore

import (
	"context"
	"fmt"
	"log/slog"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	tableName = "deliveries"
	batchSize = 100
)

// GormDeliveryStore implements ports.DeliveryStore on a GORM connection.
type GormDeliveryStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormDeliveryStore(db *gorm.DB, logger *slog.Logger) *GormDeliveryStore {
	return &GormDeliveryStore{
		db:     db,
		logger: logger.With("component", "gormstore", "dialect", db.Dialector.Name()),
	}
}

// Initialize creates or migrates the deliveries table.
func (s *GormDeliveryStore) Initialize(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&DeliveryDTO{}); err != nil {
		return errs.NewStorageErrorWithCause("initialize", tableName, err)
	}
	return nil
}

// ReadAll returns rows in insertion order. A missing table is an empty store.
func (s *GormDeliveryStore) ReadAll(ctx context.Context) ([]*delivery.Delivery, error) {
	db := s.db.WithContext(ctx)
	if !db.Migrator().HasTable(&DeliveryDTO{}) {
		return []*delivery.Delivery{}, nil
	}

	var dtos []DeliveryDTO
	if err := db.Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageErrorWithCause("read", tableName, err)
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewStorageErrorWithCause("read", tableName, fmt.Errorf("seq %d: %w", dto.Seq, err))
		}
		deliveries = append(deliveries, d)
	}

	s.logger.Debug("read deliveries", "count", len(deliveries))
	return deliveries, nil
}

// WriteAll replaces every row in one transaction.
func (s *GormDeliveryStore) WriteAll(ctx context.Context, deliveries []*delivery.Delivery) error {
	dtos := make([]DeliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(d))
	}

	if err := s.Initialize(ctx); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&DeliveryDTO{}).Error; err != nil {
			return err
		}
		if len(dtos) == 0 {
			return nil
		}
		return tx.CreateInBatches(&dtos, batchSize).Error
	})
	if err != nil {
		return errs.NewStorageErrorWithCause("write", tableName, err)
	}

	s.logger.Debug("rewrote deliveries", "count", len(dtos))
	return nil
}

// Append inserts one row after the existing ones.
func (s *GormDeliveryStore) Append(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := s.Initialize(ctx); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageErrorWithCause("append", tableName, err)
	}

	s.logger.Debug("appended delivery", "id", d.ID().String(), "seq", dto.Seq)
	return nil
}
