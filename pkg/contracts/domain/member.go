package domain

import "time"

// Membership status values. A member is Active while their latest billed
// date sits within 28 days of the latest billed date seen anywhere in the
// dataset; everything else, including members with no dated bill, is Past.
const (
	MembershipActive = "Active"
	MembershipPast   = "Past"
)

// MemberView is the finished per-member financial record handed to the
// rendering layer. It combines the raw ledger accumulators with every
// derived metric the dashboard displays. Views are read-only once built.
type MemberView struct {
	MemberID   string `json:"member_id"`
	Name       string `json:"name"`
	Market     string `json:"market"`
	PropertyID string `json:"property_id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	Street1    string `json:"street1"`

	// Ledger accumulators. BilledTotal is a signed sum of negated charges,
	// so an unpaid member trends negative.
	BilledTotal    float64 `json:"billed_total"`
	CollectedTotal float64 `json:"collected_total"`
	HostTotal      float64 `json:"host_total"`
	FeesTotal      float64 `json:"fees_total"`
	LateFeesTotal  float64 `json:"late_fees_total"`
	BillCount      int     `json:"bill_count"`
	LateBillCount  int     `json:"late_bill_count"`

	// Temporal bounds. Zero time means the bound was never observed.
	MoveIn  time.Time `json:"move_in"`
	MoveOut time.Time `json:"move_out"`

	// Derived metrics.
	Status              string  `json:"status"`
	LengthOfStayDays    int     `json:"length_of_stay_days"`
	Balance             float64 `json:"balance"`
	MonthlyRentEstimate float64 `json:"monthly_rent_estimate"`
	HostPercent         float64 `json:"host_percent"`
	FeePercent          float64 `json:"fee_percent"`
	LateFeeRate         float64 `json:"late_fee_rate"`
	BalanceGrowthRate   float64 `json:"balance_growth_rate"`
	VsPropertyAverage   float64 `json:"vs_property_average"`
	CollectionRate      float64 `json:"collection_rate"`
}

// Transaction is one row of the per-member drill-down table, merged from the
// billed and collected streams. Columns that do not apply to the row's kind
// are nil so the UI can render a dash.
type Transaction struct {
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"` // "Billed" or "Collected"
	Description string    `json:"description"`
	Amount      *float64  `json:"amount,omitempty"`
	Gross       *float64  `json:"gross,omitempty"`
	Fees        *float64  `json:"fees,omitempty"`
	Host        *float64  `json:"host,omitempty"`
}
