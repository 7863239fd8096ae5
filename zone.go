package iso8601

import (
	"errors"
	"strconv"
	"time"

	"github.com/imarsman/iso8601/pkg/utility"
	"lab.nexedi.com/kirr/go123/xfmt"
)

// ZoneProvider reports the ambient local zone in effect at a wall clock time,
// and places instants on the ambient calendar. Implementations must be safe
// for concurrent use.
type ZoneProvider interface {
	ZoneAt(year int, month time.Month, day, hour, minute, second int) (name string, offsetSec int)
	In(t time.Time) time.Time
}

// LocationZone uses the rules of a Go location, usually time.Local. A nil
// Location means time.Local.
type LocationZone struct {
	Location *time.Location
}

// ZoneAt offset of the location at the wall clock time. For wall times
// falling in a daylight saving gap or overlap the resolution of time.Date is
// used.
func (lz LocationZone) ZoneAt(year int, month time.Month, day, hour, minute, second int) (string, int) {
	return time.Date(year, month, day, hour, minute, second, 0, lz.location()).Zone()
}

// In t in the location
func (lz LocationZone) In(t time.Time) time.Time {
	return t.In(lz.location())
}

func (lz LocationZone) location() *time.Location {
	if lz.Location == nil {
		return time.Local
	}
	return lz.Location
}

// SeasonalZone is a fixed standard/daylight pair switched by the European
// Union rule: daylight time from 01:00 UTC on the last Sunday of March until
// 01:00 UTC on the last Sunday of October. It does not depend on the host
// timezone database.
type SeasonalZone struct {
	StandardName string
	Standard     time.Duration
	DaylightName string
	Daylight     time.Duration
}

// CentralEuropeanZone CET/CEST
var CentralEuropeanZone = SeasonalZone{
	StandardName: "CET",
	Standard:     time.Hour,
	DaylightName: "CEST",
	Daylight:     2 * time.Hour,
}

// lastSunday the last Sunday of month at 01:00 UTC
func lastSunday(year int, month time.Month) time.Time {
	last := time.Date(year, month, utility.DaysIn(year, month), 1, 0, 0, 0, time.UTC)
	return last.AddDate(0, 0, -int(last.Weekday()))
}

// IsDaylight whether daylight time applies at the wall clock time. The wall
// time is taken as standard time to place it against the transitions.
func (sz SeasonalZone) IsDaylight(year int, month time.Month, day, hour, minute, second int) bool {
	return daylightAt(time.Date(year, month, day, hour, minute, second, 0, time.UTC).Add(-sz.Standard))
}

// daylightAt whether daylight time applies at an instant
func daylightAt(t time.Time) bool {
	u := t.UTC()
	return !u.Before(lastSunday(u.Year(), time.March)) && u.Before(lastSunday(u.Year(), time.October))
}

// In t with the standard or daylight offset in effect at that instant
func (sz SeasonalZone) In(t time.Time) time.Time {
	if daylightAt(t) {
		return t.In(time.FixedZone(sz.DaylightName, int(sz.Daylight/time.Second)))
	}
	return t.In(time.FixedZone(sz.StandardName, int(sz.Standard/time.Second)))
}

// ZoneAt standard or daylight name and offset
func (sz SeasonalZone) ZoneAt(year int, month time.Month, day, hour, minute, second int) (string, int) {
	if sz.IsDaylight(year, month, day, hour, minute, second) {
		return sz.DaylightName, int(sz.Daylight / time.Second)
	}
	return sz.StandardName, int(sz.Standard / time.Second)
}

// Zone is either a fixed offset carrying the label it was written with, or
// the ambient local zone whose offset depends on the date it is applied to.
type Zone struct {
	minutes int
	label   string
	local   ZoneProvider
}

// FixedZone offset in minutes east of UTC
func FixedZone(minutes int, label string) Zone {
	return Zone{minutes: minutes, label: label}
}

// LocalZone the ambient zone of provider. A nil provider means time.Local.
func LocalZone(provider ZoneProvider) Zone {
	if provider == nil {
		provider = LocationZone{Location: time.Local}
	}
	return Zone{local: provider}
}

// Inferred is true when no offset was given and the ambient zone is used
func (z Zone) Inferred() bool {
	return z.local != nil
}

// OffsetAt label and offset in minutes in effect at a wall clock time. For a
// fixed zone the wall time is ignored. Ambient offsets with a seconds
// component are truncated to whole minutes.
func (z Zone) OffsetAt(year int, month time.Month, day, hour, minute, second int) (label string, minutes int) {
	if z.local == nil {
		return z.label, z.minutes
	}
	name, offsetSec := z.local.ZoneAt(year, month, day, hour, minute, second)

	return name, offsetSec / 60
}

// resolveZone turn a zone fragment into a Zone. An empty fragment gives the
// ambient zone of local.
func resolveZone(fragment string, local ZoneProvider) (Zone, error) {
	if fragment == "" {
		return LocalZone(local), nil
	}
	if fragment == "Z" {
		return FixedZone(0, fragment), nil
	}

	m, err := zoneVariant.re.FindStringMatch(fragment)
	if err != nil || m == nil || group(m, "zone") != fragment || group(m, "sign") == "" {
		return Zone{}, newParseError(ErrInvalidZone, fragment)
	}

	h, err := atoi2(group(m, "zonehour"))
	if err != nil {
		return Zone{}, newParseError(ErrInvalidZone, fragment)
	}
	var mn int
	if s := group(m, "zoneminute"); s != "" {
		mn, err = atoi2(s)
		if err != nil {
			return Zone{}, newParseError(ErrInvalidZone, fragment)
		}
	}
	if h > 23 || mn > 59 {
		return Zone{}, newParseError(ErrInvalidZone, fragment)
	}

	minutes := h*60 + mn
	if group(m, "sign") == "-" {
		minutes = -minutes
	}

	return FixedZone(minutes, fragment), nil
}

// ParseZone resolve a zone fragment such as "Z", "+01", "+01:00" or "-0130"
// into a fixed zone.
func ParseZone(fragment string) (Zone, error) {
	if fragment == "" {
		return Zone{}, newParseError(ErrInvalidZone, fragment)
	}
	return resolveZone(fragment, nil)
}

// OffsetHM get hours and minutes for an offset in minutes. Minutes are
// always positive and hours carry the sign.
func OffsetHM(minutes int) (offsetH, offsetM int) {
	offsetH = minutes / 60
	offsetM = minutes % 60

	// Ensure minutes is positive
	if offsetM < 0 {
		offsetM = -offsetM
	}

	return
}

// TwoDigitOffset get digit offset for hours and minutes. This is designed
// solely to help with calculating offset strings without using fmt.Sprintf,
// which causes allocations.
func TwoDigitOffset(in int, addPrefix bool) (digits string, err error) {
	// This is only meant to be for 2 digit offsets, such as for hours and
	// minutes offset from UTC.
	if in > 99 || in < -99 {
		err = errors.New("iso8601.TwoDigitOffset: " + strconv.Itoa(in) + " out of range")
		return
	}

	// Figure out prefix based on sign of input and make input always positive
	var prefix byte = '+'
	if in < 0 {
		prefix = '-'
		in = -in
	}

	// First byte is the integer part after an integer division
	// Second byte is the remainder
	var fr = byte('0' + in/10)
	var lr = byte('0' + in%10)

	if addPrefix {
		return utility.BytesToString(prefix, fr, lr), nil
	}
	return utility.BytesToString(fr, lr), nil
}

// OffsetString get an offset in +HHMM or +HH:MM form for an offset in minutes.
//
// For 5 hours and 30 minutes
//  +0530 or +05:30
//
// For -30 minutes
//  -0030 or -00:30
func OffsetString(minutes int, delimited bool) (offset string, err error) {
	negative := minutes < 0
	if negative {
		minutes = -minutes
	}
	offsetH, offsetM := OffsetHM(minutes)

	xfmtBuf := new(xfmt.Buffer)

	h, err := TwoDigitOffset(offsetH, false)
	if err != nil {
		return
	}
	// The sign is written separately so that offsets under an hour keep it
	if negative {
		xfmtBuf.C('-')
	} else {
		xfmtBuf.C('+')
	}
	xfmtBuf.S(h)
	if delimited {
		xfmtBuf.C(':')
	}
	m, err := TwoDigitOffset(offsetM, false)
	if err != nil {
		return
	}
	xfmtBuf.S(m)

	offset = utility.BytesToString(xfmtBuf.Bytes()...)

	return
}
