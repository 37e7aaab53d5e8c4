package ledger

import (
	"sort"
	"time"
)

// LateFeeBillType is the collected-stream bill category that counts toward
// the member's late-fee accumulators.
const LateFeeBillType = "Late Fees"

// Event is one dated ledger movement. Billed deltas are already negated;
// replaying Billed - Collected reproduces the member's running balance.
type Event struct {
	Date      time.Time
	Billed    float64
	Collected float64
}

// MemberLedger accumulates everything the two transaction streams say about
// one member. Identity fields are captured from the first row that mentions
// the member; a stream that lacks an identity column leaves it empty.
type MemberLedger struct {
	MemberID   string
	Name       string
	Market     string
	PropertyID string
	RoomID     string
	RoomNumber string
	Street1    string

	BilledTotal    float64
	CollectedTotal float64
	HostTotal      float64
	FeesTotal      float64
	LateFeesTotal  float64
	BillCount      int
	LateBillCount  int

	// Zero time means the bound was never observed in either stream.
	EarliestActivity time.Time
	LatestActivity   time.Time
	LatestBilled     time.Time

	// MonthCollected maps month key ("2006-01") to this member's collected
	// total for that month.
	MonthCollected map[string]float64

	// Events in stream insertion order. Use EventsByDate for replay.
	Events []Event
}

// EventsByDate returns a copy of the member's events in chronological order.
// The sort is stable, so same-day events keep their insertion order and the
// replay is identical across runs.
func (m *MemberLedger) EventsByDate() []Event {
	events := make([]Event, len(m.Events))
	copy(events, m.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

// PropertyMonth is the composite rollup key. A value type rather than a
// joined string, so "A-1" + "2-2024" can never collide with "A" + "1-2-2024".
type PropertyMonth struct {
	PropertyID string
	Month      string
}

// RollupCell holds the collected sum and room count for one property-month.
// Sum/Count is the peer average a member's month is compared against.
type RollupCell struct {
	Sum   float64
	Count int
}

// Average returns the per-room mean, or 0 for an empty cell.
func (c RollupCell) Average() float64 {
	if c.Count == 0 {
		return 0
	}
	return c.Sum / float64(c.Count)
}

// Result is the output of one aggregation pass over both streams.
type Result struct {
	// Members keyed by member ID. Rows with no "Member ID" cell fold into
	// the literal key "unknown".
	Members map[string]*MemberLedger

	// LatestBilledDate is the newest dated billed row across all members,
	// the reference clock for Active/Past classification. Zero when no
	// billed row carried a parseable date.
	LatestBilledDate time.Time

	// PropertyMonths is the peer-average table built from the collected
	// stream, independent of member identity.
	PropertyMonths map[PropertyMonth]RollupCell
}
