package tabular

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// amountCleaner strips the decorations billing exports put on numbers.
var amountCleaner = strings.NewReplacer("$", "", ",", "")

// Amount coerces a free-form currency or number string to a float64. It is
// the single point where "1,234.56" or "$950" becomes a number. Absent,
// unparsable and non-finite values all coerce to 0.
func Amount(value string) float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(value))
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// dateLayouts covers the formats seen across the three exports.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006-01",
}

// ParseDate parses a date cell. The second return reports whether the cell
// held a usable date; callers skip the affected temporal computation when it
// does not.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey truncates a date string to its year-month prefix ("2024-01").
// Returns the empty string for empty input; shorter inputs pass through
// unchanged.
func MonthKey(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > 7 {
		return trimmed[:7]
	}
	return trimmed
}
