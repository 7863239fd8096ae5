package utility

import (
	"strings"
	"time"
)

// BytesToString convert byte list to string with no allocation
//
// A small cost a few ns in testing is incurred for using a string builder.
// There are no heap allocations using strings.Builder.
func BytesToString(bytes ...byte) string {
	var sb = new(strings.Builder)
	for i := 0; i < len(bytes); i++ {
		sb.WriteByte(bytes[i])
	}
	return sb.String()
}

// DaysBefore[m] counts the number of days in a non-leap year
// before month m begins. There is an entry for m=12, counting
// the number of days before January of next year (365).
var DaysBefore = [...]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap proleptic Gregorian leap year rule
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear 365 or 366
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysIn the number of days in month for year. Months outside of 1-12 give 0.
func DaysIn(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeap(year) {
		return 29
	}
	return int(DaysBefore[month] - DaysBefore[month-1])
}

// DaysBeforeMonth days in the year before the first of month, accounting for
// February 29.
func DaysBeforeMonth(year int, month time.Month) int {
	d := int(DaysBefore[month-1])
	if IsLeap(year) && month >= time.March {
		d++ // February 29
	}
	return d
}

// OrdinalToMonthDay convert a 1-based day of the year to month and day of
// month. The ordinal is assumed to be within the year; callers check against
// DaysInYear first.
func OrdinalToMonthDay(year, ordinal int) (month time.Month, day int) {
	month = time.January
	for month < time.December && ordinal > DaysBeforeMonth(year, month+1) {
		month++
	}
	day = ordinal - DaysBeforeMonth(year, month)

	return
}

// WeekdayOf the weekday of a proleptic Gregorian date
//
// Can inline
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// ISOWeekOneMonday the date of the Monday starting ISO week 1 of isoYear. Week 1
// is the week holding the year's first Thursday, which is always the week
// holding January 4th. The result may fall in the previous calendar year.
func ISOWeekOneMonday(isoYear int) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	// Days back from January 4th to the Monday of its week
	back := (int(jan4.Weekday()) + 6) % 7

	return jan4.AddDate(0, 0, -back)
}

// ISOWeeksInYear 52 or 53. A year has 53 ISO weeks when it starts on a
// Thursday, or is a leap year starting on a Wednesday.
func ISOWeeksInYear(isoYear int) int {
	switch WeekdayOf(isoYear, time.January, 1) {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if IsLeap(isoYear) {
			return 53
		}
	}
	return 52
}
