package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear returns the age a person born in birthYear turns during year
func AgeInYear(birthYear, year int) int {
	return year - birthYear
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in a given month of a given year
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a day-of-month to the last valid day of the given month
// (e.g. day 31 in February becomes the 28th, or the 29th in a leap year).
func ClampDay(year int, month time.Month, day int) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// AddMonthsClamped advances a date by a number of calendar months while
// preserving the requested day-of-month, clamped to the target month's
// length. Unlike time.Time.AddDate it never rolls over into the next month.
func AddMonthsClamped(date time.Time, months int, day int) time.Time {
	totalMonths := int(date.Month()) - 1 + months
	year := date.Year() + totalMonths/12
	rem := totalMonths % 12
	if rem < 0 {
		rem += 12
		year--
	}
	month := time.Month(rem + 1)
	return time.Date(year, month, ClampDay(year, month, day), 0, 0, 0, 0, date.Location())
}

// MidnightUTC truncates an instant to midnight UTC so calendar comparisons
// ignore clock time and zone offsets.
func MidnightUTC(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// NextWeekday returns the first date on or after the given date that falls
// on the requested weekday.
func NextWeekday(date time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, offset)
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}
