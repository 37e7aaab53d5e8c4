package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"memberpulse/pkg/contracts/domain"
)

// WorkbookWriter exports the model as a single XLSX workbook with one sheet
// per output sequence.
type WorkbookWriter struct {
	dir    string
	logger *slog.Logger
}

// NewWorkbookWriter creates a writer rooted at dir. A nil logger falls back
// to slog.Default().
func NewWorkbookWriter(dir string, logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{dir: dir, logger: logger}
}

// Write writes member_report.xlsx with Members, Monthly Summary and
// Properties sheets.
func (w *WorkbookWriter) Write(model *domain.Model) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.membersSheet(f, model); err != nil {
		return err
	}
	if err := w.summarySheet(f, model); err != nil {
		return err
	}
	if err := w.propertiesSheet(f, model); err != nil {
		return err
	}

	// Drop the default sheet left over from NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	path := filepath.Join(w.dir, "member_report.xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	w.logger.Info("workbook export written", "path", path, "members", len(model.Members))
	return nil
}

func (w *WorkbookWriter) membersSheet(f *excelize.File, model *domain.Model) error {
	const sheet = "Members"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := setRow(f, sheet, 1, toCells(memberHeaders)); err != nil {
		return err
	}
	for i, m := range model.Members {
		cells := []interface{}{
			m.MemberID, m.Name, m.Market, m.PropertyID, m.RoomID, m.RoomNumber, m.Street1,
			m.Status, dateCell(m.MoveIn), dateCell(m.MoveOut), m.LengthOfStayDays,
			m.BilledTotal, m.CollectedTotal, m.Balance,
			m.HostTotal, m.FeesTotal, m.LateFeesTotal,
			m.BillCount, m.LateBillCount,
			m.MonthlyRentEstimate, m.HostPercent, m.FeePercent,
			m.LateFeeRate, m.BalanceGrowthRate, m.VsPropertyAverage, m.CollectionRate,
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *WorkbookWriter) summarySheet(f *excelize.File, model *domain.Model) error {
	const sheet = "Monthly Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := setRow(f, sheet, 1, []interface{}{"Month", "Gross Collected", "Host Earnings", "Fees"}); err != nil {
		return err
	}
	row := 2
	for _, m := range model.Summary {
		if err := setRow(f, sheet, row, []interface{}{m.Month, m.Gross, m.Host, m.Fees}); err != nil {
			return err
		}
		row++
	}
	totals := model.Totals
	return setRow(f, sheet, row, []interface{}{"Total", totals.Gross, totals.Host, totals.Fees})
}

func (w *WorkbookWriter) propertiesSheet(f *excelize.File, model *domain.Model) error {
	const sheet = "Properties"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headers := []interface{}{"Property", "Series"}
	for _, month := range model.Months {
		headers = append(headers, month)
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, p := range model.Properties {
		gross := []interface{}{p.Label, "Gross"}
		host := []interface{}{p.Label, "Host"}
		for i := range model.Months {
			gross = append(gross, p.GrossValues[i])
			host = append(host, p.HostValues[i])
		}
		if err := setRow(f, sheet, row, gross); err != nil {
			return err
		}
		if err := setRow(f, sheet, row+1, host); err != nil {
			return err
		}
		row += 2
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
