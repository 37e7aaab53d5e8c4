// Package analytics computes the derived, per-member and per-property views
// the dashboard renders.
//
// The calculator turns finalized member ledgers into MemberViews: balances,
// occupancy-derived rates, the 30-day balance growth window and the
// deviation from the property-month peer average. The summarizer rolls the
// earnings summary stream up by calendar month and by property along a
// shared month axis for the stacked charts.
//
// Both are deterministic: every division guards its zero denominator, every
// output sequence has a documented sort, and the reference clock for the
// windowed metrics is an explicit parameter rather than the wall clock.
package analytics
