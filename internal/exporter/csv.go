package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"memberpulse/pkg/contracts/domain"
)

// CSVWriter exports the model's sequences as CSV files under a base
// directory.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter creates a writer rooted at dir. A nil logger falls back to
// slog.Default().
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteAll writes members.csv, summary.csv and properties.csv for the model.
func (w *CSVWriter) WriteAll(model *domain.Model) error {
	if err := w.WriteMembers(model.Members); err != nil {
		return err
	}
	if err := w.WriteSummary(model.Summary, model.Totals); err != nil {
		return err
	}
	return w.WriteProperties(model.Months, model.Properties)
}

var memberHeaders = []string{
	"Member ID", "Name", "Market", "Property ID", "Room ID", "Room Number", "Street 1",
	"Status", "Move In", "Move Out", "Length (days)",
	"Billed", "Collected", "Balance", "Host", "Fees", "Late Fees",
	"Bill Count", "Late Bill Count",
	"Monthly Rent", "% To Host", "% From Fees", "Late Fee Rate",
	"Balance Growth Rate", "Vs Property Average", "Collection Rate",
}

// WriteMembers writes one row per member view, in model order.
func (w *CSVWriter) WriteMembers(members []domain.MemberView) error {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.MemberID, m.Name, m.Market, m.PropertyID, m.RoomID, m.RoomNumber, m.Street1,
			m.Status, dateCell(m.MoveIn), dateCell(m.MoveOut), strconv.Itoa(m.LengthOfStayDays),
			amountCell(m.BilledTotal), amountCell(m.CollectedTotal), amountCell(m.Balance),
			amountCell(m.HostTotal), amountCell(m.FeesTotal), amountCell(m.LateFeesTotal),
			strconv.Itoa(m.BillCount), strconv.Itoa(m.LateBillCount),
			amountCell(m.MonthlyRentEstimate), ratioCell(m.HostPercent), ratioCell(m.FeePercent),
			ratioCell(m.LateFeeRate), amountCell(m.BalanceGrowthRate),
			amountCell(m.VsPropertyAverage), ratioCell(m.CollectionRate),
		})
	}
	return w.write("members.csv", memberHeaders, rows)
}

// WriteSummary writes the per-month totals with a trailing Total row.
func (w *CSVWriter) WriteSummary(months []domain.MonthTotals, totals domain.AggregateTotals) error {
	headers := []string{"Month", "Gross Collected", "Host Earnings", "Fees"}
	rows := make([][]string, 0, len(months)+1)
	for _, m := range months {
		rows = append(rows, []string{m.Month, amountCell(m.Gross), amountCell(m.Host), amountCell(m.Fees)})
	}
	rows = append(rows, []string{"Total", amountCell(totals.Gross), amountCell(totals.Host), amountCell(totals.Fees)})
	return w.write("summary.csv", headers, rows)
}

// WriteProperties writes one gross row and one host row per property,
// aligned to the shared month axis.
func (w *CSVWriter) WriteProperties(months []string, properties []domain.PropertySeries) error {
	headers := append([]string{"Property", "Series"}, months...)
	rows := make([][]string, 0, len(properties)*2)
	for _, p := range properties {
		grossRow := []string{p.Label, "Gross"}
		hostRow := []string{p.Label, "Host"}
		for i := range months {
			grossRow = append(grossRow, amountCell(p.GrossValues[i]))
			hostRow = append(hostRow, amountCell(p.HostValues[i]))
		}
		rows = append(rows, grossRow, hostRow)
	}
	return w.write("properties.csv", headers, rows)
}

func (w *CSVWriter) write(name string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	w.logger.Info("csv export written", "path", path, "rows", len(rows))
	return nil
}

func amountCell(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func ratioCell(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}

func dateCell(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}
