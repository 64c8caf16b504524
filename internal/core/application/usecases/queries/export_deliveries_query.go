package queries

import (
	"errors"
	"path/filepath"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrExportDeliveriesQueryIsNotConstructed = errors.New(
	"ExportDeliveriesQuery must be created via NewExportDeliveriesQuery constructor",
)

// ExportDeliveriesQuery snapshots the whole store into a spreadsheet at path.
type ExportDeliveriesQuery struct {
	path string

	guard guard.ConstructorGuard
}

// NewExportDeliveriesQuery requires a path ending in .xlsx.
func NewExportDeliveriesQuery(path string) (ExportDeliveriesQuery, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ExportDeliveriesQuery{}, errs.NewValueIsRequiredError("export path")
	}
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ExportDeliveriesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"export path", errors.New("must end in .xlsx"))
	}

	return ExportDeliveriesQuery{
		path:  path,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ExportDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrExportDeliveriesQueryIsNotConstructed)
}

func (q ExportDeliveriesQuery) Path() string {
	return q.path
}
