package billing

import "time"

// NormalizeDate truncates a timestamp to midnight UTC so all cycle
// arithmetic is calendar-day based.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// addCalendarMonths moves a date by whole calendar months, clamping an
// overflowed day-of-month to the last valid day of the target month
// (Jan 31 + 1 month = Feb 28/29, never Mar 3).
func addCalendarMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween returns the signed whole-day count from a to b.
// Both arguments must be midnight-normalized.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
