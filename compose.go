package iso8601

import (
	"time"

	"github.com/JohnCGriffin/overflow"
	"github.com/imarsman/iso8601/pkg/utility"
)

// calendarDay reduce the active date encoding to a year, month and day.
func calendarDay(f fields) (year int, month time.Month, day int, err error) {
	switch f.encoding {
	case ordinalDate:
		if f.ordinal < 1 || f.ordinal > utility.DaysInYear(f.year) {
			err = ErrFieldRange
			return
		}
		month, day = utility.OrdinalToMonthDay(f.year, f.ordinal)
		year = f.year
	case weekDate:
		if f.weekIndex >= utility.ISOWeeksInYear(f.year) {
			err = ErrFieldRange
			return
		}
		// Days from the Monday of week 1, with Sunday counting as the 7th day
		days, ok := overflow.Mul64(int64(f.weekIndex), 7)
		if ok {
			days, ok = overflow.Add64(days, int64((int(f.weekday)+6)%7))
		}
		if !ok {
			err = ErrFieldRange
			return
		}
		year, month, day = utility.ISOWeekOneMonday(f.year).AddDate(0, 0, int(days)).Date()
	default:
		if f.month < time.January || f.month > time.December ||
			f.day < 1 || f.day > utility.DaysIn(f.year, f.month) {
			err = ErrFieldRange
			return
		}
		year, month, day = f.year, f.month, f.day
	}

	return
}

// compose build the timestamp. The fraction of a second is added after the
// wall clock is set, so a second of 60 rolls into the next minute first. The
// zone is applied to the final wall clock time.
func compose(f fields, zone Zone) (ts Timestamp, err error) {
	year, month, day, err := calendarDay(f)
	if err != nil {
		return
	}

	// Seconds of 60 are let through for leap seconds and roll over
	if f.hour > 23 || f.minute > 59 || f.second > 60 {
		err = ErrFieldRange
		return
	}

	// UTC is used only as a calendar without transitions
	wall := time.Date(year, month, day, f.hour, f.minute, f.second, 0, time.UTC)
	wall = wall.Add(time.Duration(f.microsecond) * time.Microsecond)

	ts = Timestamp{
		Year:        wall.Year(),
		Month:       wall.Month(),
		Day:         wall.Day(),
		Hour:        wall.Hour(),
		Minute:      wall.Minute(),
		Second:      wall.Second(),
		Microsecond: wall.Nanosecond() / int(time.Microsecond),
		Inferred:    zone.Inferred(),
	}
	ts.Zone, ts.Offset = zone.OffsetAt(ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)

	return
}
