package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{name: "currency with thousands separator", value: "$1,234.56", want: 1234.56},
		{name: "plain currency", value: "$950", want: 950},
		{name: "negative", value: "-42.10", want: -42.10},
		{name: "surrounding whitespace", value: " 12.5 ", want: 12.5},
		{name: "empty", value: "", want: 0},
		{name: "not a number", value: "abc", want: 0},
		{name: "infinity", value: "Inf", want: 0},
		{name: "nan", value: "NaN", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.value))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "plain date",
			value:  "2024-01-05",
			want:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "datetime",
			value:  "2024-01-05 13:30:00",
			want:   time.Date(2024, 1, 5, 13, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "rfc3339",
			value:  "2024-01-05T13:30:00Z",
			want:   time.Date(2024, 1, 5, 13, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", value: "", wantOK: false},
		{name: "garbage", value: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey("2024-01-15"))
	assert.Equal(t, "2024-01", MonthKey("2024-01"))
	assert.Equal(t, "", MonthKey(""))
	assert.Equal(t, "2024-03", MonthKey(" 2024-03-01 00:00:00 "))
}
