package dashboard

import (
	"time"

	cost "rental-billing/internal/cost/domain"
	payment "rental-billing/internal/payment/domain"
)

// TrailingMonths is the length of the month series fed to dashboard charts.
const TrailingMonths = 6

// NetProfit is revenue minus costs per window.
type NetProfit struct {
	Total   float64 `json:"total"`
	Monthly float64 `json:"monthly"`
	Weekly  float64 `json:"weekly"`
}

// FinancialSummary is the time-windowed rollup consumed by dashboards.
// The month series are indexed by offset from the current month: index 0
// is the current month, index 5 five months back.
type FinancialSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
	WeeklyRevenue    float64 `json:"weeklyRevenue"`
	RevenueGrowthPct float64 `json:"revenueGrowthPct"`

	TotalCosts   float64 `json:"totalCosts"`
	MonthlyCosts float64 `json:"monthlyCosts"`
	WeeklyCosts  float64 `json:"weeklyCosts"`

	NetProfit NetProfit `json:"netProfit"`

	RevenueByMonth [TrailingMonths]float64 `json:"revenueByMonth"`
	CostsByMonth   [TrailingMonths]float64 `json:"costsByMonth"`
}

// Aggregate folds approved payments and costs into the windowed summary.
// today is caller-supplied and normalized internally; the inputs are never
// mutated.
func Aggregate(payments []payment.Payment, costs []cost.Cost, today time.Time) FinancialSummary {
	today = truncateToDay(today)
	weekStart := StartOfWeek(today)
	monthStart := StartOfMonth(today)
	prevStart, prevEnd := PreviousMonthRange(today)

	var s FinancialSummary
	var prevMonthRevenue float64

	for _, p := range payments {
		if !p.IsApproved() {
			continue
		}
		at := truncateToDay(p.CreatedAt)

		s.TotalRevenue += p.Amount
		if !at.Before(monthStart) {
			s.MonthlyRevenue += p.Amount
		}
		if !at.Before(weekStart) {
			s.WeeklyRevenue += p.Amount
		}
		if !at.Before(prevStart) && at.Before(prevEnd) {
			prevMonthRevenue += p.Amount
		}
		if off := monthOffset(today, at); off >= 0 && off < TrailingMonths {
			s.RevenueByMonth[off] += p.Amount
		}
	}

	for _, c := range costs {
		at := truncateToDay(c.Date)

		s.TotalCosts += c.Value
		if !at.Before(monthStart) {
			s.MonthlyCosts += c.Value
		}
		if !at.Before(weekStart) {
			s.WeeklyCosts += c.Value
		}
		if off := monthOffset(today, at); off >= 0 && off < TrailingMonths {
			s.CostsByMonth[off] += c.Value
		}
	}

	s.RevenueGrowthPct = growthPct(s.MonthlyRevenue, prevMonthRevenue)
	s.NetProfit = NetProfit{
		Total:   s.TotalRevenue - s.TotalCosts,
		Monthly: s.MonthlyRevenue - s.MonthlyCosts,
		Weekly:  s.WeeklyRevenue - s.WeeklyCosts,
	}
	return s
}

// growthPct is 0 when the previous month had no revenue. Policy choice to
// avoid division by zero, not a mathematical necessity.
func growthPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
