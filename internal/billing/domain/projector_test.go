package billing

import (
	"errors"
	"testing"
	"time"

	contract "rental-billing/internal/contract/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectDueDateWeekly(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{"plain week", date(2024, time.March, 4), date(2024, time.March, 11)},
		{"month boundary", date(2024, time.April, 28), date(2024, time.May, 5)},
		{"year boundary", date(2023, time.December, 28), date(2024, time.January, 4)},
		{"leap day crossing", date(2024, time.February, 26), date(2024, time.March, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ProjectDueDate(tc.anchor, contract.RecurrenceWeekly)
			if err != nil {
				t.Fatalf("project weekly: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("due date mismatch: got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestProjectDueDateMonthly(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{"plain month", date(2024, time.March, 10), date(2024, time.April, 10)},
		{"clamp to feb leap", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"clamp to feb non-leap", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"clamp 31 to 30", date(2024, time.March, 31), date(2024, time.April, 30)},
		{"jan 30 to feb", date(2023, time.January, 30), date(2023, time.February, 28)},
		{"december rollover", date(2023, time.December, 15), date(2024, time.January, 15)},
		{"no clamp needed day 28", date(2024, time.January, 28), date(2024, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ProjectDueDate(tc.anchor, contract.RecurrenceMonthly)
			if err != nil {
				t.Fatalf("project monthly: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("due date mismatch: got=%s want=%s", got, tc.want)
			}
			if !got.After(tc.anchor) {
				t.Fatalf("due date %s not after anchor %s", got, tc.anchor)
			}
		})
	}
}

func TestProjectDueDateInvalidRecurrence(t *testing.T) {
	for _, r := range []contract.Recurrence{"", "daily", "MONTHLY", "yearly"} {
		if _, err := ProjectDueDate(date(2024, time.January, 1), r); !errors.Is(err, ErrInvalidRecurrence) {
			t.Fatalf("recurrence %q: expected ErrInvalidRecurrence, got %v", r, err)
		}
	}
}

func TestProjectDueDateNormalizesTimeOfDay(t *testing.T) {
	anchor := time.Date(2024, time.May, 10, 23, 45, 12, 0, time.UTC)
	got, err := ProjectDueDate(anchor, contract.RecurrenceWeekly)
	if err != nil {
		t.Fatalf("project weekly: %v", err)
	}
	if !got.Equal(date(2024, time.May, 17)) {
		t.Fatalf("expected midnight due date, got %s", got)
	}
}
