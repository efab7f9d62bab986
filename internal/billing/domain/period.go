package billing

import (
	"time"

	contract "rental-billing/internal/contract/domain"
	payment "rental-billing/internal/payment/domain"
)

// PeriodStart returns the start of the period being billed for: the due
// date moved one interval back. The period window is [start, nextDue).
func PeriodStart(nextDue time.Time, recurrence contract.Recurrence) (time.Time, error) {
	nextDue = NormalizeDate(nextDue)
	switch recurrence {
	case contract.RecurrenceWeekly:
		return nextDue.AddDate(0, 0, -7), nil
	case contract.RecurrenceMonthly:
		return addCalendarMonths(nextDue, -1), nil
	default:
		return time.Time{}, ErrInvalidRecurrence
	}
}

// PeriodPaid reports whether an approved payment already falls inside the
// current period window. Callers decide what to do with the answer; the
// classifier does not consume it.
func PeriodPaid(payments []payment.Payment, nextDue time.Time, recurrence contract.Recurrence) (bool, error) {
	start, err := PeriodStart(nextDue, recurrence)
	if err != nil {
		return false, err
	}
	end := NormalizeDate(nextDue)
	for _, p := range payments {
		if !p.IsApproved() {
			continue
		}
		at := NormalizeDate(p.CreatedAt)
		if !at.Before(start) && at.Before(end) {
			return true, nil
		}
	}
	return false, nil
}
