// Package xlsxexport writes deliveries to an Excel workbook.
package xlsxexport

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet of an exported workbook.
const SheetName = "Deliveries"

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

var columns = []string{"Date", "ID", "Name", "Phone1", "Phone2", "Email", "Weight", "From", "To", "Amount", "Status"}

// Exporter implements ports.DeliveryExporter with excelize. Amounts are
// written as numbers so the sheet can sum them.
type Exporter struct {
	logger *slog.Logger
}

func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{logger: logger.With("component", "xlsxexport")}
}

// Export writes a header row and one row per delivery to path.
func (e *Exporter) Export(ctx context.Context, path string, deliveries []*delivery.Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.fill(f, deliveries); err != nil {
		return errs.NewStorageErrorWithCause("export", path, err)
	}

	if err := f.SaveAs(path); err != nil {
		return errs.NewStorageErrorWithCause("export", path, err)
	}

	e.logger.Debug("exported deliveries", "path", path, "count", len(deliveries))
	return nil
}

func (e *Exporter) fill(f *excelize.File, deliveries []*delivery.Delivery) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return err
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err = f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, d := range deliveries {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return cellErr
		}
		row := toRow(d)
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if len(deliveries) > 0 {
		if err = e.styleAmounts(f, len(deliveries), amountStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetName, "A", lastCol, 14)
}

func (e *Exporter) styleAmounts(f *excelize.File, rows, style int) error {
	amountCol := slices.Index(columns, "Amount") + 1
	first, err := excelize.CoordinatesToCellName(amountCol, 2)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(amountCol, rows+1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}

func toRow(d *delivery.Delivery) []any {
	return []any{
		d.Date().Format(time.DateOnly),
		int(d.ID()),
		d.Name(),
		d.Phone1().String(),
		d.Phone2().String(),
		d.Email().String(),
		d.Weight().Kilograms(),
		d.From().String(),
		d.To().String(),
		float64(d.Amount().Satang()) / kernel.SatangPerBaht,
		d.Status().String(),
	}
}
