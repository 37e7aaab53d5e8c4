// Package tabular turns raw delimited-text exports into ordered field records.
//
// The exports this engine ingests are produced by third-party billing tools
// and are only loosely RFC 4180: quoted fields may contain commas, newlines
// and doubled quotes, line endings mix \n and \r\n, and stray blank or
// truncated rows appear at the end of files. The parser is a single
// left-to-right scan that never fails on malformed input; defective rows are
// dropped, defective cells degrade to the empty string.
//
// The package also owns value coercion: every numeric cell in the system goes
// through Amount, every date cell through ParseDate, and every month bucket
// through MonthKey, so "$1,234.56" means 1234.56 everywhere or nowhere.
package tabular
