package iso8601

import (
	"errors"
	"time"
)

var errCannotParseNumber = errors.New("couldn't parse number")

// Convert string of length 1 to int
func atoi1(in string) (int, error) {
	a := int(in[0]) - '0'
	if a < 0 || a > 9 {
		return 0, errCannotParseNumber
	}
	return a, nil
}

// Convert string of length 2 to int
func atoi2(in string) (int, error) {
	_ = in[1] // This helps the compiler reduce the number of times it checks `in` is long enough
	a, b := int(in[0])-'0', int(in[1])-'0'
	if a < 0 || a > 9 || b < 0 || b > 9 {
		return 0, errCannotParseNumber
	}
	return a*10 + b, nil
}

// Convert string of length 3 to int
func atoi3(in string) (int, error) {
	_ = in[2]
	a, b, c := int(in[0])-'0', int(in[1])-'0', int(in[2])-'0'
	if a < 0 || a > 9 || b < 0 || b > 9 || c < 0 || c > 9 {
		return 0, errCannotParseNumber
	}
	return a*100 + b*10 + c, nil
}

// Convert string of length 4 to int
func atoi4(in string) (int, error) {
	_ = in[3] // This helps the compiler reduce the number of times it checks `in` is long enough
	a, b, c, d := int(in[0])-'0', int(in[1])-'0', int(in[2])-'0', int(in[3])-'0'
	if a < 0 || a > 9 || b < 0 || b > 9 || c < 0 || c > 9 || d < 0 || d > 9 {
		return 0, errCannotParseNumber
	}
	return a*1000 + b*100 + c*10 + d, nil
}

// fractionMicros the microseconds in a decimal fraction of a second written
// as its digits after the point. Digits past the sixth are dropped, which
// rounds toward zero.
func fractionMicros(digits string) (micros int, err error) {
	const microDigits = 6

	for i := 0; i < microDigits; i++ {
		var d int
		if i < len(digits) {
			if d, err = atoi1(digits[i : i+1]); err != nil {
				return
			}
		}
		micros = micros*10 + d
	}

	return
}

// dateEncoding which of the three date forms is in use
type dateEncoding int

const (
	calendarDate dateEncoding = iota // year, month and day
	ordinalDate                      // year and day of year
	weekDate                         // ISO week year, week and weekday
)

// fields are the numeric values the composer works from. Absent date parts
// have been filled in or left at their calendar minimum and absent time parts
// are zero.
type fields struct {
	encoding dateEncoding

	year  int
	month time.Month
	day   int

	ordinal int

	// weekIndex is the zero based ISO week. weekday uses the Sunday=0
	// convention of time.Weekday.
	weekIndex int
	weekday   time.Weekday

	hour        int
	minute      int
	second      int
	microsecond int
}

// complete convert the extracted strings to numbers. When the input had no
// date part the date is the calendar date of reference. When it had one, the
// parts it lacks are not taken from reference but fall to January and the
// 1st.
func complete(e extracted, reference time.Time) (f fields, err error) {
	f.month = time.January
	f.day = 1

	if !e.hasDate {
		f.year, f.month, f.day = reference.Date()
	} else {
		// The grammar only puts digits in these so conversion errors can't
		// happen short of a grammar change.
		if f.year, err = atoi4(e.year); err != nil {
			return
		}

		switch {
		case e.ordinal != "":
			f.encoding = ordinalDate
			if f.ordinal, err = atoi3(e.ordinal); err != nil {
				return
			}
		case e.week != "":
			f.encoding = weekDate
			var week int
			if week, err = atoi2(e.week); err != nil {
				return
			}
			f.weekIndex = week - 1

			// A week without a weekday is its Monday
			isoWeekday := 1
			if e.weekday != "" {
				if isoWeekday, err = atoi1(e.weekday); err != nil {
					return
				}
			}
			if week < 1 || isoWeekday < 1 || isoWeekday > 7 {
				err = ErrFieldRange
				return
			}
			// ISO Monday=1..Sunday=7 to Sunday=0..Saturday=6
			if isoWeekday == 7 {
				isoWeekday = 0
			}
			f.weekday = time.Weekday(isoWeekday)
		default:
			if e.month != "" {
				var m int
				if m, err = atoi2(e.month); err != nil {
					return
				}
				f.month = time.Month(m)
			}
			if e.day != "" {
				if f.day, err = atoi2(e.day); err != nil {
					return
				}
			}
		}
	}

	if e.hour != "" {
		if f.hour, err = atoi2(e.hour); err != nil {
			return
		}
	}
	if e.minute != "" {
		if f.minute, err = atoi2(e.minute); err != nil {
			return
		}
	}
	if e.second != "" {
		if f.second, err = atoi2(e.second); err != nil {
			return
		}
	}
	if e.fraction != "" {
		if f.microsecond, err = fractionMicros(e.fraction); err != nil {
			return
		}
	}

	return
}
