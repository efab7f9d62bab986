package billing

import (
	"time"

	contract "rental-billing/internal/contract/domain"
)

// ProjectDueDate advances the anchor by exactly one recurrence interval.
// The result is one period past the anchor, which may already be in the
// past; it is not the next future due date.
func ProjectDueDate(anchor time.Time, recurrence contract.Recurrence) (time.Time, error) {
	anchor = NormalizeDate(anchor)

	var next time.Time
	switch recurrence {
	case contract.RecurrenceWeekly:
		next = anchor.AddDate(0, 0, 7)
	case contract.RecurrenceMonthly:
		next = addCalendarMonths(anchor, 1)
	default:
		return time.Time{}, ErrInvalidRecurrence
	}

	// Adding one positive interval is monotonic under calendar arithmetic,
	// so this only trips on a broken clamping rule.
	if !next.After(anchor) {
		return time.Time{}, ErrDueDateNotAdvanced
	}
	return next, nil
}
