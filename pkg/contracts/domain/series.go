package domain

import "time"

// MonthTotals is the summary stream rolled up to one calendar month.
type MonthTotals struct {
	Month string  `json:"month"` // "2006-01" key
	Gross float64 `json:"gross"`
	Host  float64 `json:"host"`
	Fees  float64 `json:"fees"`
}

// AggregateTotals sums the monthly summary over the whole period.
// CollectionRate is host over gross, 0 when gross is 0.
type AggregateTotals struct {
	Gross          float64 `json:"gross"`
	Host           float64 `json:"host"`
	Fees           float64 `json:"fees"`
	CollectionRate float64 `json:"collection_rate"`
}

// PropertySeries carries one property's gross and host totals aligned to the
// shared month axis of the dashboard: index i corresponds to Months[i] of the
// containing Model, with 0 where the property had no activity that month.
type PropertySeries struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	GrossValues []float64 `json:"gross_values"`
	HostValues  []float64 `json:"host_values"`
}

// RankedMember is a compact member reference used by the overview top lists.
type RankedMember struct {
	MemberID string  `json:"member_id"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
}

// Model is the complete output of one pipeline run: everything the rendering
// layer needs, computed once over fully materialized inputs. It is immutable
// after the run completes.
type Model struct {
	AsOf             time.Time `json:"as_of"`
	LatestBilledDate time.Time `json:"latest_billed_date"`

	Summary []MonthTotals   `json:"summary"` // sorted by month ascending
	Totals  AggregateTotals `json:"totals"`

	Months         []string         `json:"months"` // shared sorted month axis
	Properties     []PropertySeries `json:"properties"`
	HostNetByMonth []float64        `json:"host_net_by_month"`

	Members []MemberView `json:"members"` // sorted by collected total descending

	TopCollected []RankedMember `json:"top_collected"`
	TopBalances  []RankedMember `json:"top_balances"`
	TopHostNet   []RankedMember `json:"top_host_net"`
}
