package billing

import "time"

// Status classifies a contract's cycle relative to today.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due_today"
	StatusPending  Status = "pending"
)

// Classify compares the due date to the caller-supplied today and returns
// the status plus the signed day count (negative = days late).
func Classify(nextDue, today time.Time) (Status, int) {
	days := daysBetween(NormalizeDate(today), NormalizeDate(nextDue))
	switch {
	case days < 0:
		return StatusOverdue, days
	case days == 0:
		return StatusDueToday, 0
	default:
		return StatusPending, days
	}
}
