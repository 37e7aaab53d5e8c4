package analytics

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"memberpulse/internal/ledger"
	"memberpulse/pkg/contracts/domain"
)

const (
	// activityWindow is how far a member's latest billed date may trail the
	// dataset's latest billed date and still count as Active.
	activityWindow = 28 * 24 * time.Hour

	// growthWindow is the lookback for the balance growth metric.
	growthWindow = 30 * 24 * time.Hour

	// daysPerMonth converts a per-day collection rate to a monthly estimate.
	daysPerMonth = 365.0 / 12.0
)

// Calculator derives member metrics from a completed aggregation pass. The
// asOf time anchors the 30-day balance growth window; callers inject a fixed
// timestamp so identical inputs always produce identical output.
type Calculator struct {
	asOf   time.Time
	logger *slog.Logger
}

// NewCalculator creates a calculator anchored at asOf. A nil logger falls
// back to slog.Default().
func NewCalculator(asOf time.Time, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{asOf: asOf, logger: logger}
}

// MemberViews finalizes every ledger in the result into a read-only view.
// Output is sorted by collected total descending, member ID ascending on
// ties.
func (c *Calculator) MemberViews(ctx context.Context, result *ledger.Result) []domain.MemberView {
	views := make([]domain.MemberView, 0, len(result.Members))
	for _, member := range result.Members {
		views = append(views, c.finalize(member, result))
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].CollectedTotal != views[j].CollectedTotal {
			return views[i].CollectedTotal > views[j].CollectedTotal
		}
		return views[i].MemberID < views[j].MemberID
	})

	c.logger.InfoContext(ctx, "member views finalized",
		"members", len(views),
		"as_of", c.asOf,
	)

	return views
}

func (c *Calculator) finalize(m *ledger.MemberLedger, result *ledger.Result) domain.MemberView {
	view := domain.MemberView{
		MemberID:   m.MemberID,
		Name:       m.Name,
		Market:     m.Market,
		PropertyID: m.PropertyID,
		RoomID:     m.RoomID,
		RoomNumber: m.RoomNumber,
		Street1:    m.Street1,

		BilledTotal:    m.BilledTotal,
		CollectedTotal: m.CollectedTotal,
		HostTotal:      m.HostTotal,
		FeesTotal:      m.FeesTotal,
		LateFeesTotal:  m.LateFeesTotal,
		BillCount:      m.BillCount,
		LateBillCount:  m.LateBillCount,

		MoveIn:  m.EarliestActivity,
		MoveOut: m.LatestActivity,
	}

	view.LengthOfStayDays = lengthOfStayDays(m.EarliestActivity, m.LatestActivity)
	view.Balance = m.BilledTotal - m.CollectedTotal

	if view.LengthOfStayDays > 0 {
		perDay := m.CollectedTotal / float64(view.LengthOfStayDays)
		view.MonthlyRentEstimate = perDay * daysPerMonth
	}
	if m.CollectedTotal != 0 {
		view.HostPercent = m.HostTotal / m.CollectedTotal
		view.FeePercent = m.LateFeesTotal / m.CollectedTotal
	}
	if m.BillCount != 0 {
		view.LateFeeRate = float64(m.LateBillCount) / float64(m.BillCount)
	}
	if m.BilledTotal != 0 {
		view.CollectionRate = m.CollectedTotal / m.BilledTotal
	}

	view.VsPropertyAverage = c.vsPropertyAverage(m, result.PropertyMonths)
	view.BalanceGrowthRate = c.balanceGrowth(m, view.Balance)
	view.Status = membershipStatus(m.LatestBilled, result.LatestBilledDate)

	return view
}

// lengthOfStayDays rounds the activity span to whole days, with a one-day
// floor for same-day activity. Zero when either bound is absent.
func lengthOfStayDays(earliest, latest time.Time) int {
	if earliest.IsZero() || latest.IsZero() {
		return 0
	}
	days := int(math.Round(latest.Sub(earliest).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// vsPropertyAverage is the mean deviation of this member's monthly collected
// totals from the peer average of their property for the same months. Months
// are visited in sorted order so float accumulation is reproducible.
func (c *Calculator) vsPropertyAverage(m *ledger.MemberLedger, table map[ledger.PropertyMonth]ledger.RollupCell) float64 {
	months := make([]string, 0, len(m.MonthCollected))
	for month := range m.MonthCollected {
		months = append(months, month)
	}
	sort.Strings(months)

	var sum float64
	var count int
	for _, month := range months {
		cell, ok := table[ledger.PropertyMonth{PropertyID: m.PropertyID, Month: month}]
		if !ok || cell.Count == 0 {
			continue
		}
		sum += m.MonthCollected[month] - cell.Average()
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// balanceGrowth replays the member's dated events chronologically and
// captures the running balance at the last event on or before asOf minus 30
// days. The growth rate is the current balance minus that snapshot; the
// snapshot is 0 when no event precedes the window.
func (c *Calculator) balanceGrowth(m *ledger.MemberLedger, balance float64) float64 {
	cutoff := c.asOf.Add(-growthWindow)

	var running, snapshot float64
	for _, event := range m.EventsByDate() {
		running += event.Billed - event.Collected
		if !event.Date.After(cutoff) {
			snapshot = running
		}
	}
	return balance - snapshot
}

func membershipStatus(latestBilled, datasetLatest time.Time) string {
	if latestBilled.IsZero() || datasetLatest.IsZero() {
		return domain.MembershipPast
	}
	if datasetLatest.Sub(latestBilled) <= activityWindow {
		return domain.MembershipActive
	}
	return domain.MembershipPast
}

// Rankings builds the overview top lists from finalized views. Views must
// already carry their derived fields; the input slice is not modified.
func Rankings(members []domain.MemberView) (topCollected, topBalances, topHostNet []domain.RankedMember) {
	topCollected = rankBy(members, 6, func(v domain.MemberView) float64 { return v.CollectedTotal })
	topBalances = rankBy(members, 8, func(v domain.MemberView) float64 { return v.Balance })
	topHostNet = rankBy(members, 6, func(v domain.MemberView) float64 { return v.HostTotal })
	return topCollected, topBalances, topHostNet
}

func rankBy(members []domain.MemberView, n int, value func(domain.MemberView) float64) []domain.RankedMember {
	sorted := make([]domain.MemberView, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	ranked := make([]domain.RankedMember, 0, len(sorted))
	for _, member := range sorted {
		label := member.Name
		if label == "" {
			label = "Member " + member.MemberID
		}
		ranked = append(ranked, domain.RankedMember{
			MemberID: member.MemberID,
			Label:    label,
			Value:    value(member),
		})
	}
	return ranked
}
