package dashboard

import "time"

// truncateToDay drops the time-of-day so window tests are calendar based.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the most recent Monday at or before the given day.
func StartOfWeek(today time.Time) time.Time {
	today = truncateToDay(today)
	back := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		back = 6
	}
	return today.AddDate(0, 0, -back)
}

// StartOfMonth returns day 1 of the current calendar month.
func StartOfMonth(today time.Time) time.Time {
	today = truncateToDay(today)
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PreviousMonthRange returns the half-open bounds [start, end) of the
// calendar month immediately before the current one.
func PreviousMonthRange(today time.Time) (time.Time, time.Time) {
	end := StartOfMonth(today)
	return end.AddDate(0, -1, 0), end
}

// monthOffset returns how many whole calendar months before the current
// month a date falls. 0 = current month, negative = future.
func monthOffset(today, at time.Time) int {
	return (today.Year()-at.Year())*12 + int(today.Month()) - int(at.Month())
}
