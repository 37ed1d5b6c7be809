package utils

import "time"

// AddMonths advances a date by whole months, clamping to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29, not Mar 2).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// MonthStart truncates a date to the first day of its month. Contribution
// periods are keyed this way so uniqueness checks compare like with like.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
