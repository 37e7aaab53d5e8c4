package analytics

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"memberpulse/internal/tabular"
	"memberpulse/pkg/contracts/domain"
)

// Summarizer rolls the earnings summary stream up by calendar month and by
// property. It is independent of the ledger aggregator and reads only the
// summary export.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer. A nil logger falls back to
// slog.Default().
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summary is the rolled-up output of the summary stream.
type Summary struct {
	// Months holds one entry per calendar month, ascending.
	Months []domain.MonthTotals

	// Totals sums Months over the whole period.
	Totals domain.AggregateTotals

	// MonthAxis is the sorted, deduplicated month-key axis shared by every
	// property series.
	MonthAxis []string

	// Properties is ordered by total gross descending; ties keep the order
	// in which the property first appeared in the stream.
	Properties []domain.PropertySeries

	// HostNetByMonth is the per-month host total across all properties,
	// aligned to MonthAxis. Rendered as the overlay line on the gross chart.
	HostNetByMonth []float64
}

// propertyAccumulator collects one property's per-month totals before the
// series are aligned to the shared axis.
type propertyAccumulator struct {
	key          string
	label        string
	grossByMonth map[string]float64
	hostByMonth  map[string]float64
	totalGross   float64
}

// Summarize rolls up the summary records. Rows with no earnings month are
// skipped; every other defect degrades to zero through the value normalizer.
func (s *Summarizer) Summarize(ctx context.Context, records []tabular.Record) *Summary {
	monthTotals := make(map[string]*domain.MonthTotals)
	hostByMonth := make(map[string]float64)
	properties := make(map[string]*propertyAccumulator)
	var propertyOrder []string

	for _, row := range records {
		month := row.Get("Earnings Month")
		if month == "" {
			continue
		}

		gross := tabular.Amount(row.Get("Gross Collected"))
		host := tabular.Amount(row.Get("Host Earnings"))
		fees := math.Abs(tabular.Amount(row.Get("Service Fees"))) +
			math.Abs(tabular.Amount(row.Get("Transaction Fee")))

		totals, ok := monthTotals[month]
		if !ok {
			totals = &domain.MonthTotals{Month: month}
			monthTotals[month] = totals
		}
		totals.Gross += gross
		totals.Host += host
		totals.Fees += fees
		hostByMonth[month] += host

		propertyID := row.Get("PSID")
		if propertyID == "" {
			propertyID = row.Get("Property ID")
		}
		address := row.Get("Address")
		if address == "" {
			address = row.Get("Street 1")
		}

		key := propertyID
		if key == "" {
			key = address
		}
		if key == "" {
			key = "Unknown"
		}

		property, ok := properties[key]
		if !ok {
			property = &propertyAccumulator{
				key:          key,
				label:        propertyLabel(propertyID, address),
				grossByMonth: make(map[string]float64),
				hostByMonth:  make(map[string]float64),
			}
			properties[key] = property
			propertyOrder = append(propertyOrder, key)
		}
		property.grossByMonth[month] += gross
		property.hostByMonth[month] += host
		property.totalGross += gross
	}

	summary := &Summary{
		Months:    make([]domain.MonthTotals, 0, len(monthTotals)),
		MonthAxis: make([]string, 0, len(monthTotals)),
	}
	for month := range monthTotals {
		summary.MonthAxis = append(summary.MonthAxis, month)
	}
	sort.Strings(summary.MonthAxis)

	for _, month := range summary.MonthAxis {
		totals := *monthTotals[month]
		summary.Months = append(summary.Months, totals)
		summary.Totals.Gross += totals.Gross
		summary.Totals.Host += totals.Host
		summary.Totals.Fees += totals.Fees
		summary.HostNetByMonth = append(summary.HostNetByMonth, hostByMonth[month])
	}
	if summary.Totals.Gross != 0 {
		summary.Totals.CollectionRate = summary.Totals.Host / summary.Totals.Gross
	}

	ordered := make([]*propertyAccumulator, 0, len(propertyOrder))
	for _, key := range propertyOrder {
		ordered = append(ordered, properties[key])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].totalGross > ordered[j].totalGross
	})

	for _, property := range ordered {
		series := domain.PropertySeries{
			Key:         property.key,
			Label:       property.label,
			GrossValues: make([]float64, len(summary.MonthAxis)),
			HostValues:  make([]float64, len(summary.MonthAxis)),
		}
		for i, month := range summary.MonthAxis {
			series.GrossValues[i] = property.grossByMonth[month]
			series.HostValues[i] = property.hostByMonth[month]
		}
		summary.Properties = append(summary.Properties, series)
	}

	s.logger.InfoContext(ctx, "summary rollup completed",
		"rows", len(records),
		"months", len(summary.MonthAxis),
		"properties", len(summary.Properties),
	)

	return summary
}

func propertyLabel(propertyID, address string) string {
	switch {
	case address != "":
		return address
	case propertyID != "":
		return "Property " + propertyID
	default:
		return "Unknown"
	}
}
