package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicRows(t *testing.T) {
	records := Parse("Member ID,Amount\nM1,100.00\nM2,250.50\n")

	require.Len(t, records, 2)
	assert.Equal(t, []string{"Member ID", "Amount"}, records[0].Headers())
	assert.Equal(t, "M1", records[0].Get("Member ID"))
	assert.Equal(t, "100.00", records[0].Get("Amount"))
	assert.Equal(t, "250.50", records[1].Get("Amount"))
}

func TestParse_QuotedFieldRoundTrip(t *testing.T) {
	// A quoted field containing the separator, a newline and an escaped
	// quote must survive as one literal cell.
	records := Parse("Name,Note\nM1,\"a,b\nc\"\"d\"\n")

	require.Len(t, records, 1)
	assert.Equal(t, "a,b\nc\"d", records[0].Get("Note"))
}

func TestParse_LineEndings(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unix", text: "A,B\n1,2\n3,4\n"},
		{name: "windows", text: "A,B\r\n1,2\r\n3,4\r\n"},
		{name: "mixed", text: "A,B\r\n1,2\n3,4\r\n"},
		{name: "no trailing newline", text: "A,B\n1,2\n3,4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Parse(tt.text)
			require.Len(t, records, 2)
			assert.Equal(t, "1", records[0].Get("A"))
			assert.Equal(t, "4", records[1].Get("B"))
		})
	}
}

func TestParse_DropsDefectiveRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "blank line between rows", text: "A,B\n1,2\n\n3,4\n", want: 2},
		{name: "row of empty cells", text: "A,B\n1,2\n,,\n3,4\n", want: 2},
		{name: "single-cell trailer", text: "A,B\n1,2\nstray\n", want: 1},
		{name: "header only", text: "A,B\n", want: 0},
		{name: "empty input", text: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Parse(tt.text), tt.want)
		})
	}
}

func TestParse_TrimsCellsAndHeaders(t *testing.T) {
	records := Parse("  Gross Collected , Member ID \n 80.00 , M1 \n")

	require.Len(t, records, 1)
	// Header trimming also absorbs the trailing-space header variant some
	// exports carry ("Gross Collected ").
	assert.Equal(t, "80.00", records[0].Get("Gross Collected"))
	assert.Equal(t, "M1", records[0].Get("Member ID"))
}

func TestParse_ShortRowDefaultsMissingColumns(t *testing.T) {
	records := Parse("A,B,C\n1,2\n")

	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].Get("B"))
	assert.Equal(t, "", records[0].Get("C"))
	assert.Equal(t, "", records[0].Get("Nonexistent"))
}
