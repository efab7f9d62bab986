package billing

import (
	"testing"
	"time"
)

func TestClassifySignInvariant(t *testing.T) {
	today := date(2024, time.June, 15)
	for offset := -60; offset <= 60; offset++ {
		nextDue := today.AddDate(0, 0, offset)
		status, days := Classify(nextDue, today)

		if days != offset {
			t.Fatalf("offset %d: daysRemaining=%d", offset, days)
		}
		switch {
		case days < 0 && status != StatusOverdue:
			t.Fatalf("offset %d: expected overdue, got %s", offset, status)
		case days == 0 && status != StatusDueToday:
			t.Fatalf("offset %d: expected due_today, got %s", offset, status)
		case days > 0 && status != StatusPending:
			t.Fatalf("offset %d: expected pending, got %s", offset, status)
		}
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	nextDue := time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.May, 17, 22, 15, 0, 0, time.UTC)

	status, days := Classify(nextDue, today)
	if status != StatusDueToday || days != 0 {
		t.Fatalf("expected due_today/0, got %s/%d", status, days)
	}
}
