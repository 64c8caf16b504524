package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/pkg/errs"
)

// Store implements ports.DeliveryStore over a single CSV file.
//
// Example:
//
//	store := csvstore.NewStore("deliveries.csv", logger)
//	if err := store.Append(ctx, d); err != nil {
//	    return err
//	}
//	all, err := store.ReadAll(ctx)
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "csvstore", "path", path),
	}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Initialize writes a header-only file when none exists.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	exists, err := s.exists()
	if err != nil {
		return errs.NewStorageErrorWithCause("initialize", s.path, err)
	}
	if exists {
		return nil
	}

	s.logger.Debug("creating store file")
	return s.write("initialize", nil)
}

// ReadAll decodes every row in file order. A missing or empty file is an empty store.
func (s *Store) ReadAll(ctx context.Context) ([]*delivery.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*delivery.Delivery{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("read", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []*delivery.Delivery{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("read", s.path, err)
	}
	if err = checkHeader(row); err != nil {
		return nil, errs.NewStorageErrorWithCause("read", s.path, err)
	}

	deliveries := make([]*delivery.Delivery, 0)
	for {
		row, err = r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.NewStorageErrorWithCause("read", s.path, err)
		}

		d, decodeErr := toDomain(row)
		if decodeErr != nil {
			line, _ := r.FieldPos(0)
			return nil, errs.NewStorageErrorWithCause("read", s.path, fmt.Errorf("line %d: %w", line, decodeErr))
		}
		deliveries = append(deliveries, d)
	}

	s.logger.Debug("read deliveries", "count", len(deliveries))
	return deliveries, nil
}

// WriteAll atomically replaces the file with the header and deliveries.
func (s *Store) WriteAll(ctx context.Context, deliveries []*delivery.Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return err
		}
	}

	if err := s.write("write", deliveries); err != nil {
		return err
	}

	s.logger.Debug("rewrote deliveries", "count", len(deliveries))
	return nil
}

// Append adds one row at the end of the file, creating the file first if needed.
func (s *Store) Append(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := s.ensureHeader(ctx); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errs.NewStorageErrorWithCause("append", s.path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(fromDomain(d))
	w.Flush()

	if err = errors.Join(w.Error(), f.Sync(), f.Close()); err != nil {
		return errs.NewStorageErrorWithCause("append", s.path, err)
	}

	s.logger.Debug("appended delivery", "id", d.ID().String())
	return nil
}

// ensureHeader initializes a missing file and also a zero-length one, which
// Initialize alone would leave headerless.
func (s *Store) ensureHeader(ctx context.Context) error {
	info, err := os.Stat(s.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewStorageErrorWithCause("append", s.path, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	return s.write("initialize", nil)
}

func (s *Store) exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *Store) write(op string, deliveries []*delivery.Delivery) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(header)
	for _, d := range deliveries {
		_ = w.Write(fromDomain(d))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errs.NewStorageErrorWithCause(op, s.path, err)
	}

	if err := writeFileAtomic(s.path, buf.Bytes()); err != nil {
		return errs.NewStorageErrorWithCause(op, s.path, err)
	}
	return nil
}
