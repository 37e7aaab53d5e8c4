package tabular

import "strings"

// Record is a single parsed data row. Values are keyed by trimmed header
// name; Headers preserves the column order of the source file. A Record is
// immutable once produced by Parse.
type Record struct {
	headers []string
	values  map[string]string
}

// Get returns the trimmed cell text for the named column, or the empty
// string when the column is absent from the row or the file.
func (r Record) Get(name string) string {
	return r.values[name]
}

// Headers returns the column names in file order. The returned slice is
// shared across all records of one Parse call and must not be modified.
func (r Record) Headers() []string {
	return r.headers
}

// Len returns the number of columns mapped in this record.
func (r Record) Len() int {
	return len(r.values)
}

// Parse scans raw delimited text into records. The first row is consumed as
// the header row and its cells, trimmed, become the field names. Quoted
// fields may contain commas, record separators and doubled quotes (which
// collapse to one literal quote). \r\n counts as a single row boundary.
// Rows whose cells are all empty are treated as blank lines, and rows with
// fewer than two cells are dropped as stray trailers. Parse never fails:
// malformed input degrades by dropping the offending row.
func Parse(text string) []Record {
	var rows [][]string
	var row []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if ch == '"' {
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				current.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
			continue
		}

		if ch == ',' && !inQuotes {
			row = append(row, current.String())
			current.Reset()
			continue
		}

		if (ch == '\n' || ch == '\r') && !inQuotes {
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			row = append(row, current.String())
			current.Reset()
			if !allEmpty(row) {
				rows = append(rows, row)
			}
			row = nil
			continue
		}

		current.WriteByte(ch)
	}

	if current.Len() > 0 || len(row) > 0 {
		row = append(row, current.String())
		if !allEmpty(row) {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if len(cells) < 2 {
			continue
		}
		values := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				values[header] = strings.TrimSpace(cells[i])
			} else {
				values[header] = ""
			}
		}
		records = append(records, Record{headers: headers, values: values})
	}

	return records
}

func allEmpty(cells []string) bool {
	for _, cell := range cells {
		if len(cell) > 0 {
			return false
		}
	}
	return true
}
