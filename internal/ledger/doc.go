// Package ledger folds the billed and collected transaction streams into one
// mutable ledger per member.
//
// The two streams are independent exports that share only the "Member ID"
// column. A member seen in either stream gets a ledger; the stream that
// never mentioned them simply contributes zero. Billed amounts are stored
// negated (a charge reduces the member's net position), so the running
// balance convention throughout the system is billed minus collected.
//
// The aggregator also maintains two cross-member tables: the latest billed
// date observed anywhere, which later serves as the reference clock for
// activity classification, and a per-property-month rollup of room collected
// totals, which later serves as the peer-average baseline.
//
// Ledgers are mutated only while Build runs. Once Build returns, the result
// is handed to the analytics calculator and never written again.
package ledger
