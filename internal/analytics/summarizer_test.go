package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpulse/internal/tabular"
)

const summaryCSV = "Earnings Month,Gross Collected,Host Earnings,Service Fees,Transaction Fee,PSID,Address\n" +
	"2024-02,1000.00,900.00,-50.00,-10.00,P1,12 Oak St\n" +
	"2024-01,2000.00,1800.00,-100.00,-20.00,P1,12 Oak St\n" +
	"2024-01,500.00,450.00,-25.00,-5.00,P2,9 Elm Ave\n"

func TestSummarize_MonthTotalsSortedAscending(t *testing.T) {
	records := tabular.Parse(summaryCSV)
	require.Len(t, records, 3)

	summary := NewSummarizer(nil).Summarize(context.Background(), records)

	require.Len(t, summary.Months, 2)
	assert.Equal(t, "2024-01", summary.Months[0].Month)
	assert.Equal(t, 2500.0, summary.Months[0].Gross)
	assert.Equal(t, 2250.0, summary.Months[0].Host)
	assert.InDelta(t, 150.0, summary.Months[0].Fees, 1e-9)
	assert.Equal(t, "2024-02", summary.Months[1].Month)
	assert.Equal(t, 1000.0, summary.Months[1].Gross)
}

func TestSummarize_AggregateTotals(t *testing.T) {
	summary := NewSummarizer(nil).Summarize(context.Background(), tabular.Parse(summaryCSV))

	assert.Equal(t, 3500.0, summary.Totals.Gross)
	assert.Equal(t, 3150.0, summary.Totals.Host)
	assert.InDelta(t, 210.0, summary.Totals.Fees, 1e-9)
	assert.InDelta(t, 3150.0/3500.0, summary.Totals.CollectionRate, 1e-9)
}

func TestSummarize_PropertySeriesAlignedAndOrdered(t *testing.T) {
	summary := NewSummarizer(nil).Summarize(context.Background(), tabular.Parse(summaryCSV))

	assert.Equal(t, []string{"2024-01", "2024-02"}, summary.MonthAxis)
	require.Len(t, summary.Properties, 2)

	// P1 has the larger total gross, so it leads the stack.
	first := summary.Properties[0]
	assert.Equal(t, "P1", first.Key)
	assert.Equal(t, "12 Oak St", first.Label)
	assert.Equal(t, []float64{2000, 1000}, first.GrossValues)

	second := summary.Properties[1]
	assert.Equal(t, "P2", second.Key)
	// Zero where the property had no activity that month.
	assert.Equal(t, []float64{500, 0}, second.GrossValues)

	assert.Equal(t, []float64{2250, 900}, summary.HostNetByMonth)
}

func TestSummarize_SkipsRowsWithoutMonth(t *testing.T) {
	csv := "Earnings Month,Gross Collected,Host Earnings\n" +
		",100.00,90.00\n" +
		"2024-01,200.00,180.00\n"

	summary := NewSummarizer(nil).Summarize(context.Background(), tabular.Parse(csv))

	require.Len(t, summary.Months, 1)
	assert.Equal(t, 200.0, summary.Totals.Gross)
}

func TestSummarize_PropertyKeyFallbacks(t *testing.T) {
	csv := "Earnings Month,Gross Collected,PSID,Property ID,Address,Street 1\n" +
		"2024-01,100.00,,,,\n" +
		"2024-01,200.00,,P7,,\n" +
		"2024-01,300.00,,,,4 Pine Rd\n"

	summary := NewSummarizer(nil).Summarize(context.Background(), tabular.Parse(csv))

	require.Len(t, summary.Properties, 3)
	labels := map[string]string{}
	for _, p := range summary.Properties {
		labels[p.Key] = p.Label
	}
	assert.Equal(t, "Unknown", labels["Unknown"])
	assert.Equal(t, "Property P7", labels["P7"])
	assert.Equal(t, "4 Pine Rd", labels["4 Pine Rd"])
}

func TestSummarize_Empty(t *testing.T) {
	summary := NewSummarizer(nil).Summarize(context.Background(), nil)

	assert.Empty(t, summary.Months)
	assert.Empty(t, summary.Properties)
	assert.Equal(t, 0.0, summary.Totals.CollectionRate)
}
