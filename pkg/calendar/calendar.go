// Package calendar provides date arithmetic for schedule layout.
//
// All functions operate on date-only values: times constructed at midnight
// UTC. Durations are whole days. Weekend handling follows a simple rule
// used throughout the layout engine: work never starts or ends on a
// Saturday or Sunday, so dates landing there are pushed to Monday.
package calendar

import "time"

// Date returns the midnight-UTC time for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), DaysIn(t.Year(), t.Month()))
}

// NextMonth returns the first day of the month after t's.
func NextMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1).AddDate(0, 1, 0)
}

// DaysBetween returns the number of whole days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// SkipWeekend pushes a Saturday two days and a Sunday one day forward,
// landing on the following Monday. Weekdays pass through unchanged.
func SkipWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}

// ShadowDuration extends a task duration so that its exclusive end date
// skips a weekend. A five day task starting Monday 2024-01-01 would end on
// Saturday; the shadow duration is seven, ending Monday 2024-01-08.
func ShadowDuration(start time.Time, days int) int {
	switch start.AddDate(0, 0, days).Weekday() {
	case time.Saturday:
		return days + 2
	case time.Sunday:
		return days + 1
	}
	return days
}

// MonthStarts returns the first days of every month from from's month
// through to's month, inclusive.
func MonthStarts(from, to time.Time) []time.Time {
	var months []time.Time
	for m, last := MonthStart(from), MonthStart(to); !m.After(last); m = NextMonth(m) {
		months = append(months, m)
	}
	return months
}
