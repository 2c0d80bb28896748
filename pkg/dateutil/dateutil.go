package dateutil

import (
	"time"
)

// DaysPerMonth is the fixed day-count approximation used for payoff
// schedules. Calendar-accurate month arithmetic is deliberately not used.
const DaysPerMonth = 30

// MonthKey returns the year-month bucket key for a date, e.g. "2025-07".
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}

// StartOfMonth returns midnight on the first day of the date's month.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last instant of the date's month.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// AddApproxMonths advances a date by whole 30-day months.
func AddApproxMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, 0, months*DaysPerMonth)
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween returns the whole number of days from one date to another.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// IsLeapYear checks if a year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
