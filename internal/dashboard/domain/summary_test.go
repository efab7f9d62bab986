package dashboard

import (
	"testing"
	"time"

	cost "rental-billing/internal/cost/domain"
	payment "rental-billing/internal/payment/domain"
)

// Tuesday 2024-06-18; week starts Monday 2024-06-17, month 2024-06-01.
var today = date(2024, time.June, 18)

func approved(id string, amount float64, at time.Time) payment.Payment {
	return payment.Payment{ID: id, ClientID: "u-1", Amount: amount, Status: payment.StatusApproved, CreatedAt: at}
}

func TestAggregateWindows(t *testing.T) {
	payments := []payment.Payment{
		approved("p-1", 100, date(2024, time.June, 17)), // this week + this month
		approved("p-2", 200, date(2024, time.June, 3)),  // this month only
		approved("p-3", 300, date(2024, time.May, 20)),  // previous month
		approved("p-4", 400, date(2024, time.February, 10)),
		{ID: "p-5", Amount: 999, Status: payment.StatusPending, CreatedAt: today},
	}
	costs := []cost.Cost{
		{ID: "d-1", Value: 50, Date: date(2024, time.June, 18), PaymentType: cost.PaymentTypeAvista},
		{ID: "d-2", Value: 30, Date: date(2024, time.June, 5), PaymentType: cost.PaymentTypeAvista},
		{ID: "d-3", Value: 20, Date: date(2024, time.April, 1), PaymentType: cost.PaymentTypeParcelado, Installments: 3, InstallmentValue: 6.67},
	}

	s := Aggregate(payments, costs, today)

	if s.TotalRevenue != 1000 {
		t.Fatalf("total revenue: got=%v want=1000", s.TotalRevenue)
	}
	if s.MonthlyRevenue != 300 {
		t.Fatalf("monthly revenue: got=%v want=300", s.MonthlyRevenue)
	}
	if s.WeeklyRevenue != 100 {
		t.Fatalf("weekly revenue: got=%v want=100", s.WeeklyRevenue)
	}
	if s.TotalCosts != 100 || s.MonthlyCosts != 80 || s.WeeklyCosts != 50 {
		t.Fatalf("costs mismatch: total=%v monthly=%v weekly=%v", s.TotalCosts, s.MonthlyCosts, s.WeeklyCosts)
	}
	if s.NetProfit.Total != 900 || s.NetProfit.Monthly != 220 || s.NetProfit.Weekly != 50 {
		t.Fatalf("net profit mismatch: %+v", s.NetProfit)
	}

	// (300 - 300) / 300 * 100
	if s.RevenueGrowthPct != 0 {
		t.Fatalf("growth pct: got=%v want=0", s.RevenueGrowthPct)
	}
}

func TestAggregateGrowthPct(t *testing.T) {
	payments := []payment.Payment{
		approved("p-1", 150, date(2024, time.June, 10)),
		approved("p-2", 100, date(2024, time.May, 10)),
	}
	s := Aggregate(payments, nil, today)
	if s.RevenueGrowthPct != 50 {
		t.Fatalf("growth pct: got=%v want=50", s.RevenueGrowthPct)
	}

	// Zero previous month is a policy 0, never a division by zero.
	s = Aggregate([]payment.Payment{approved("p-1", 500, date(2024, time.June, 10))}, nil, today)
	if s.RevenueGrowthPct != 0 {
		t.Fatalf("growth pct with empty previous month: got=%v want=0", s.RevenueGrowthPct)
	}
}

func TestAggregateAllPaymentsInCurrentMonth(t *testing.T) {
	payments := []payment.Payment{
		approved("p-1", 10, date(2024, time.June, 2)),
		approved("p-2", 20, date(2024, time.June, 12)),
		approved("p-3", 30, date(2024, time.June, 18)),
	}
	s := Aggregate(payments, nil, today)
	if s.TotalRevenue != s.MonthlyRevenue {
		t.Fatalf("total %v != monthly %v with all payments in current month", s.TotalRevenue, s.MonthlyRevenue)
	}
	if s.WeeklyRevenue > s.MonthlyRevenue || s.MonthlyRevenue > s.TotalRevenue {
		t.Fatalf("window ordering violated: weekly=%v monthly=%v total=%v", s.WeeklyRevenue, s.MonthlyRevenue, s.TotalRevenue)
	}
}

func TestAggregateMonthSeries(t *testing.T) {
	payments := []payment.Payment{
		approved("p-1", 100, date(2024, time.June, 5)),      // offset 0
		approved("p-2", 200, date(2024, time.May, 28)),      // offset 1
		approved("p-3", 300, date(2024, time.January, 15)),  // offset 5
		approved("p-4", 400, date(2023, time.December, 20)), // offset 6, discarded
	}
	costs := []cost.Cost{
		{ID: "d-1", Value: 40, Date: date(2024, time.April, 2), PaymentType: cost.PaymentTypeAvista}, // offset 2
	}

	s := Aggregate(payments, costs, today)

	want := [TrailingMonths]float64{100, 200, 0, 0, 0, 300}
	if s.RevenueByMonth != want {
		t.Fatalf("revenue series mismatch: got=%v want=%v", s.RevenueByMonth, want)
	}
	wantCosts := [TrailingMonths]float64{0, 0, 40, 0, 0, 0}
	if s.CostsByMonth != wantCosts {
		t.Fatalf("cost series mismatch: got=%v want=%v", s.CostsByMonth, wantCosts)
	}
}
