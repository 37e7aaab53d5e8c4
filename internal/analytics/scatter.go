package analytics

import (
	"math"
	"sort"

	"memberpulse/pkg/contracts/domain"
)

// scatterFields maps an axis field name to its extractor. The second return
// reports whether the member has a usable value; members missing either axis
// are excluded from the plot. Dates participate as unix timestamps.
var scatterFields = map[string]func(domain.MemberView) (float64, bool){
	"billed_total":          func(v domain.MemberView) (float64, bool) { return v.BilledTotal, true },
	"collected_total":       func(v domain.MemberView) (float64, bool) { return v.CollectedTotal, true },
	"host_total":            func(v domain.MemberView) (float64, bool) { return v.HostTotal, true },
	"fees_total":            func(v domain.MemberView) (float64, bool) { return v.FeesTotal, true },
	"late_fees_total":       func(v domain.MemberView) (float64, bool) { return v.LateFeesTotal, true },
	"balance":               func(v domain.MemberView) (float64, bool) { return v.Balance, true },
	"monthly_rent_estimate": func(v domain.MemberView) (float64, bool) { return v.MonthlyRentEstimate, true },
	"host_percent":          func(v domain.MemberView) (float64, bool) { return v.HostPercent, true },
	"fee_percent":           func(v domain.MemberView) (float64, bool) { return v.FeePercent, true },
	"late_fee_rate":         func(v domain.MemberView) (float64, bool) { return v.LateFeeRate, true },
	"balance_growth_rate":   func(v domain.MemberView) (float64, bool) { return v.BalanceGrowthRate, true },
	"vs_property_average":   func(v domain.MemberView) (float64, bool) { return v.VsPropertyAverage, true },
	"collection_rate":       func(v domain.MemberView) (float64, bool) { return v.CollectionRate, true },
	"length_of_stay_days":   func(v domain.MemberView) (float64, bool) { return float64(v.LengthOfStayDays), true },
	"bill_count":            func(v domain.MemberView) (float64, bool) { return float64(v.BillCount), true },
	"move_in": func(v domain.MemberView) (float64, bool) {
		if v.MoveIn.IsZero() {
			return 0, false
		}
		return float64(v.MoveIn.Unix()), true
	},
	"move_out": func(v domain.MemberView) (float64, bool) {
		if v.MoveOut.IsZero() {
			return 0, false
		}
		return float64(v.MoveOut.Unix()), true
	},
}

// IsScatterField reports whether name is a valid scatter axis.
func IsScatterField(name string) bool {
	_, ok := scatterFields[name]
	return ok
}

// ScatterFieldNames returns the valid axis names, sorted.
func ScatterFieldNames() []string {
	names := make([]string, 0, len(scatterFields))
	for name := range scatterFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScatterSeries extracts the paired samples for two axes. Only members where
// both fields resolve to finite numbers participate. Unknown field names
// yield empty series.
func ScatterSeries(members []domain.MemberView, xField, yField string) (xs, ys []float64) {
	extractX, okX := scatterFields[xField]
	extractY, okY := scatterFields[yField]
	if !okX || !okY {
		return nil, nil
	}

	for _, member := range members {
		x, ok := extractX(member)
		if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		y, ok := extractY(member)
		if !ok || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
