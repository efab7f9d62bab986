package billing

import (
	"errors"
	"testing"
	"time"

	contract "rental-billing/internal/contract/domain"
	payment "rental-billing/internal/payment/domain"
)

func TestEvaluateNeverPaidMonthlyOverdue(t *testing.T) {
	c := contract.Contract{
		ID:         "c-1",
		ClientID:   "u-1",
		StartDate:  date(2024, time.January, 1),
		Recurrence: contract.RecurrenceMonthly,
		Active:     true,
	}

	cycle, err := Evaluate(c, nil, date(2024, time.March, 15))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !cycle.AnchorDate.Equal(date(2024, time.January, 1)) {
		t.Fatalf("anchor mismatch: got=%s", cycle.AnchorDate)
	}
	if !cycle.NextDueDate.Equal(date(2024, time.February, 1)) {
		t.Fatalf("next due mismatch: got=%s", cycle.NextDueDate)
	}
	if cycle.DaysRemaining != -43 {
		t.Fatalf("days remaining mismatch: got=%d want=-43", cycle.DaysRemaining)
	}
	if cycle.Status != StatusOverdue {
		t.Fatalf("status mismatch: got=%s want=%s", cycle.Status, StatusOverdue)
	}
	if cycle.DaysLate() != 43 {
		t.Fatalf("days late mismatch: got=%d want=43", cycle.DaysLate())
	}
}

func TestEvaluateWeeklyDueToday(t *testing.T) {
	c := contract.Contract{
		ID:         "c-1",
		ClientID:   "u-1",
		StartDate:  date(2024, time.January, 1),
		Recurrence: contract.RecurrenceWeekly,
		Active:     true,
	}
	payments := []payment.Payment{
		{ID: "p-1", Status: payment.StatusApproved, CreatedAt: date(2024, time.May, 10)},
	}

	cycle, err := Evaluate(c, payments, date(2024, time.May, 17))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !cycle.NextDueDate.Equal(date(2024, time.May, 17)) {
		t.Fatalf("next due mismatch: got=%s", cycle.NextDueDate)
	}
	if cycle.Status != StatusDueToday || cycle.DaysRemaining != 0 {
		t.Fatalf("expected due_today/0, got %s/%d", cycle.Status, cycle.DaysRemaining)
	}
}

func TestEvaluateMonthlyEndOfJanuaryClamping(t *testing.T) {
	c := contract.Contract{
		ID:         "c-1",
		ClientID:   "u-1",
		Recurrence: contract.RecurrenceMonthly,
		Active:     true,
	}

	// Leap year: Jan 31 anchor lands on Feb 29.
	leap := []payment.Payment{
		{ID: "p-1", Status: payment.StatusApproved, CreatedAt: date(2024, time.January, 31)},
	}
	cycle, err := Evaluate(c, leap, date(2024, time.February, 28))
	if err != nil {
		t.Fatalf("evaluate leap: %v", err)
	}
	if !cycle.NextDueDate.Equal(date(2024, time.February, 29)) {
		t.Fatalf("leap next due mismatch: got=%s", cycle.NextDueDate)
	}
	if cycle.Status != StatusPending || cycle.DaysRemaining != 1 {
		t.Fatalf("leap: expected pending/1, got %s/%d", cycle.Status, cycle.DaysRemaining)
	}

	// Non-leap year: same anchor day lands on Feb 28 and is due today.
	nonLeap := []payment.Payment{
		{ID: "p-1", Status: payment.StatusApproved, CreatedAt: date(2023, time.January, 31)},
	}
	cycle, err = Evaluate(c, nonLeap, date(2023, time.February, 28))
	if err != nil {
		t.Fatalf("evaluate non-leap: %v", err)
	}
	if !cycle.NextDueDate.Equal(date(2023, time.February, 28)) {
		t.Fatalf("non-leap next due mismatch: got=%s", cycle.NextDueDate)
	}
	if cycle.Status != StatusDueToday || cycle.DaysRemaining != 0 {
		t.Fatalf("non-leap: expected due_today/0, got %s/%d", cycle.Status, cycle.DaysRemaining)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	c := contract.Contract{
		ID:         "c-1",
		ClientID:   "u-1",
		StartDate:  date(2024, time.January, 15),
		Recurrence: contract.RecurrenceMonthly,
		Active:     true,
	}
	payments := []payment.Payment{
		{ID: "p-1", Status: payment.StatusApproved, CreatedAt: date(2024, time.April, 2)},
		{ID: "p-2", Status: payment.StatusPending, CreatedAt: date(2024, time.April, 20)},
	}
	today := date(2024, time.April, 25)

	first, err := Evaluate(c, payments, today)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	second, err := Evaluate(c, payments, today)
	if err != nil {
		t.Fatalf("evaluate again: %v", err)
	}
	if first != second {
		t.Fatalf("evaluation not idempotent: first=%+v second=%+v", first, second)
	}
}

func TestEvaluateFailsFastOnBadInput(t *testing.T) {
	if _, err := Evaluate(contract.Contract{ID: "c-1", Recurrence: contract.RecurrenceMonthly}, nil, date(2024, time.March, 1)); !errors.Is(err, ErrMissingAnchor) {
		t.Fatalf("expected ErrMissingAnchor, got %v", err)
	}

	c := contract.Contract{ID: "c-1", StartDate: date(2024, time.January, 1), Recurrence: "biweekly"}
	if _, err := Evaluate(c, nil, date(2024, time.March, 1)); !errors.Is(err, ErrInvalidRecurrence) {
		t.Fatalf("expected ErrInvalidRecurrence, got %v", err)
	}
}
