package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpulse/pkg/contracts/domain"
)

func testModel() *domain.Model {
	return &domain.Model{
		AsOf: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Summary: []domain.MonthTotals{
			{Month: "2024-01", Gross: 2000, Host: 1800, Fees: 120},
			{Month: "2024-02", Gross: 1000, Host: 900, Fees: 60},
		},
		Totals: domain.AggregateTotals{Gross: 3000, Host: 2700, Fees: 180, CollectionRate: 0.9},
		Months: []string{"2024-01", "2024-02"},
		Properties: []domain.PropertySeries{
			{Key: "P1", Label: "12 Oak St", GrossValues: []float64{2000, 1000}, HostValues: []float64{1800, 900}},
		},
		Members: []domain.MemberView{
			{
				MemberID: "M1", Name: "Ada Smith", PropertyID: "P1", Status: domain.MembershipActive,
				MoveIn:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				BilledTotal: -1900, CollectedTotal: 1900, HostPercent: 0.9,
			},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, nil)

	require.NoError(t, writer.WriteAll(testModel()))

	members := readCSV(t, filepath.Join(dir, "members.csv"))
	require.Len(t, members, 2)
	assert.Equal(t, memberHeaders, members[0])
	assert.Equal(t, "M1", members[1][0])
	assert.Equal(t, "2024-01-01", members[1][8])
	assert.Equal(t, "", members[1][9])
	assert.Equal(t, "-1900.00", members[1][11])
	assert.Equal(t, "0.9000", members[1][20])

	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"2024-01", "2000.00", "1800.00", "120.00"}, summary[1])
	assert.Equal(t, []string{"Total", "3000.00", "2700.00", "180.00"}, summary[3])

	properties := readCSV(t, filepath.Join(dir, "properties.csv"))
	require.Len(t, properties, 3)
	assert.Equal(t, []string{"Property", "Series", "2024-01", "2024-02"}, properties[0])
	assert.Equal(t, []string{"12 Oak St", "Gross", "2000.00", "1000.00"}, properties[1])
	assert.Equal(t, []string{"12 Oak St", "Host", "1800.00", "900.00"}, properties[2])
}

func TestWorkbookWriter_Write(t *testing.T) {
	dir := t.TempDir()
	writer := NewWorkbookWriter(dir, nil)

	require.NoError(t, writer.Write(testModel()))

	info, err := os.Stat(filepath.Join(dir, "member_report.xlsx"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
