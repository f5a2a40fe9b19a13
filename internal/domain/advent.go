package domain

import "time"

// AdventStart returns December 1 of the advent window that "now" falls
// into: the current year while now's calendar date is on or before
// December 25, otherwise December 1 of the next year. The comparison is
// date-based, so any time of day on December 25 still selects the
// current year.
func AdventStart(now time.Time) time.Time {
	year := now.Year()
	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, now.Location())
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if nowDate.After(christmas) {
		year++
	}
	return time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
}

// AdventDates returns the PlanDays consecutive calendar dates starting at
// AdventStart(now). Index i holds the date for dayIndex i+1.
func AdventDates(now time.Time) []time.Time {
	start := AdventStart(now)
	dates := make([]time.Time, PlanDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// FormatDateShort renders a date like "Dec 12".
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDateLong renders a date like "December 12, 2026".
func FormatDateLong(t time.Time) string {
	return t.Format("January 2, 2006")
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPast reports whether t's calendar day is strictly before now's.
func IsPast(t, now time.Time) bool {
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	nd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return td.Before(nd)
}
