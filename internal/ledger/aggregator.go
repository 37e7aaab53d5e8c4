package ledger

import (
	"context"
	"log/slog"
	"math"
	"time"

	"memberpulse/internal/tabular"
)

// Aggregator builds member ledgers from the two transaction streams.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator. A nil logger falls back to
// slog.Default().
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// roomMonth keys the intermediate per-room rollup of the collected stream.
type roomMonth struct {
	PropertyID string
	Month      string
	RoomID     string
}

// Build folds both streams into one ledger per member. Both inputs must be
// fully materialized; the pass order of the two streams does not affect the
// final totals. Build never fails: rows with unusable cells contribute what
// they can and default the rest.
func (a *Aggregator) Build(ctx context.Context, billed, collected []tabular.Record) *Result {
	result := &Result{
		Members:        make(map[string]*MemberLedger),
		PropertyMonths: make(map[PropertyMonth]RollupCell),
	}
	roomTotals := make(map[roomMonth]float64)

	for _, row := range billed {
		a.applyBilled(result, row)
	}
	for _, row := range collected {
		a.applyCollected(result, roomTotals, row)
	}

	// Fold per-room totals into the property-month peer table: each room
	// contributes one count regardless of how many rows it had.
	for key, sum := range roomTotals {
		cell := result.PropertyMonths[PropertyMonth{PropertyID: key.PropertyID, Month: key.Month}]
		cell.Sum += sum
		cell.Count++
		result.PropertyMonths[PropertyMonth{PropertyID: key.PropertyID, Month: key.Month}] = cell
	}

	a.logger.InfoContext(ctx, "ledger aggregation completed",
		"members", len(result.Members),
		"billed_rows", len(billed),
		"collected_rows", len(collected),
		"property_months", len(result.PropertyMonths),
	)

	return result
}

func (a *Aggregator) applyBilled(result *Result, row tabular.Record) {
	member := a.member(result, row)

	// Charges are stored negated so billed minus collected reads as the
	// member's net position.
	amount := -tabular.Amount(row.Get("Amount"))
	member.BilledTotal += amount
	member.BillCount++

	if date, ok := tabular.ParseDate(row.Get("Created")); ok {
		if result.LatestBilledDate.IsZero() || date.After(result.LatestBilledDate) {
			result.LatestBilledDate = date
		}
		member.touchActivity(date)
		if member.LatestBilled.IsZero() || date.After(member.LatestBilled) {
			member.LatestBilled = date
		}
		member.Events = append(member.Events, Event{Date: date, Billed: amount})
	}
}

func (a *Aggregator) applyCollected(result *Result, roomTotals map[roomMonth]float64, row tabular.Record) {
	member := a.member(result, row)

	gross := tabular.Amount(row.Get("Gross Collected"))
	host := tabular.Amount(row.Get("Host Earnings"))
	fees := math.Abs(tabular.Amount(row.Get("Total Fees")))

	// Month bucket: payout month when present, transaction date otherwise.
	monthKey := tabular.MonthKey(row.Get("Payout Month"))
	if monthKey == "" {
		monthKey = tabular.MonthKey(row.Get("Created"))
	}

	if roomID := row.Get("Room ID"); monthKey != "" && roomID != "" {
		key := roomMonth{PropertyID: row.Get("Property ID"), Month: monthKey, RoomID: roomID}
		roomTotals[key] += gross
	}

	member.CollectedTotal += gross
	member.HostTotal += host
	member.FeesTotal += fees
	member.BillCount++
	if row.Get("Bill Type") == LateFeeBillType {
		member.LateFeesTotal += gross
		member.LateBillCount++
	}

	if date, ok := tabular.ParseDate(row.Get("Created")); ok {
		member.touchActivity(date)
		member.Events = append(member.Events, Event{Date: date, Collected: gross})
	}
	if monthKey != "" {
		member.MonthCollected[monthKey] += gross
	}
}

// member returns the ledger for the row's member, creating it with the row's
// identity fields on first sight.
func (a *Aggregator) member(result *Result, row tabular.Record) *MemberLedger {
	memberID := row.Get("Member ID")
	if memberID == "" {
		memberID = "unknown"
	}

	if existing, ok := result.Members[memberID]; ok {
		return existing
	}

	name := row.Get("Member First Name")
	if last := row.Get("Member Last Name"); last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}

	member := &MemberLedger{
		MemberID:       memberID,
		Name:           name,
		Market:         row.Get("PadSplit Market"),
		PropertyID:     row.Get("Property ID"),
		RoomID:         row.Get("Room ID"),
		RoomNumber:     row.Get("Room Number"),
		Street1:        row.Get("Street 1"),
		MonthCollected: make(map[string]float64),
	}
	result.Members[memberID] = member
	return member
}

func (m *MemberLedger) touchActivity(date time.Time) {
	if m.EarliestActivity.IsZero() || date.Before(m.EarliestActivity) {
		m.EarliestActivity = date
	}
	if m.LatestActivity.IsZero() || date.After(m.LatestActivity) {
		m.LatestActivity = date
	}
}
