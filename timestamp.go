package iso8601

import (
	"time"
)

// Timestamp a parsed date and time with every field set. Offset is in minutes
// east of UTC and Zone is its label: the fragment as written in the input for
// explicit offsets, or the ambient zone's abbreviation when Inferred.
type Timestamp struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int

	Offset   int
	Zone     string
	Inferred bool
}

// Time the timestamp as a time.Time in a fixed zone named by the Zone label
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second,
		ts.Microsecond*int(time.Microsecond), time.FixedZone(ts.Zone, ts.Offset*60))
}

// OffsetString the offset as +HHMM or, delimited, +HH:MM
func (ts Timestamp) OffsetString(delimited bool) string {
	// Offsets are whole minutes under a day so this can't fail
	s, _ := OffsetString(ts.Offset, delimited)
	return s
}

// String space separated date and time with the offset
//   "1997-07-16 19:20:30+02:00"
//   "1997-07-16 19:20:30.423000+02:00"
//
// The fraction is only written when it is not zero.
func (ts Timestamp) String() string {
	layout := "2006-01-02 15:04:05"
	if ts.Microsecond != 0 {
		layout = "2006-01-02 15:04:05.000000"
	}
	return ts.Time().Format(layout) + ts.OffsetString(true)
}

// ISO8601 extended format with microseconds
//   "2006-01-02T15:04:05.000000-07:00"
func (ts Timestamp) ISO8601() string {
	return ts.Time().Format("2006-01-02T15:04:05.000000") + ts.OffsetString(true)
}

// ISO8601Compact basic format with microseconds
//   "20060102T150405.000000-0700"
func (ts Timestamp) ISO8601Compact() string {
	return ts.Time().Format("20060102T150405.000000") + ts.OffsetString(false)
}

// RFC3339 with nanosecond precision trimmed of trailing zeros. UTC is written
// as Z.
func (ts Timestamp) RFC3339() string {
	return ts.Time().Format(time.RFC3339Nano)
}
