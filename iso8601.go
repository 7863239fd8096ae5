// Package iso8601 parses ISO 8601 date and time strings, complete or partial,
// into a fully qualified Timestamp.
//
// Calendar dates, ordinal dates and week dates are accepted in extended
// (1997-07-16, 1997-206, 2004-W45-3) and basic (19970716, 1997206, 2004W453)
// form, optionally followed by a time with any number of fractional second
// digits and a zone offset. Inputs without a date take their date from a
// reference time. Inputs without an offset are placed in the ambient local
// zone as it stands on the parsed date, so daylight saving follows the parsed
// date rather than the reference.
package iso8601

import (
	"errors"
	"strconv"
	"time"

	"github.com/imarsman/iso8601/pkg/utility"
	"lab.nexedi.com/kirr/go123/xfmt"
)

var (
	// ErrUnparsable input matched none of the grammar variants
	ErrUnparsable = errors.New("unparsable input")
	// ErrInvalidZone a zone fragment was present but malformed
	ErrInvalidZone = errors.New("not a valid timezone fragment")
	// ErrFieldRange a field is outside of the calendar or clock range
	ErrFieldRange = errors.New("field out of range")
)

// ParseError the reason a parse failed and the text it failed on. For
// ErrInvalidZone the text is the zone fragment, otherwise the whole input.
type ParseError struct {
	Err   error
	Input string
}

func newParseError(err error, input string) *ParseError {
	return &ParseError{Err: err, Input: input}
}

func (e *ParseError) Error() string {
	// Avoid allocations that would occur with fmt.Sprintf
	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S("iso8601: ").S(e.Err.Error()).C(' ').S(strconv.Quote(e.Input))

	return utility.BytesToString(xfmtBuf.Bytes()...)
}

// Unwrap allows errors.Is against the sentinel errors
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser parses against a fixed ambient zone. A Parser holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	local ZoneProvider
}

// NewParser parser whose ambient zone is local. A nil local uses time.Local.
func NewParser(local ZoneProvider) *Parser {
	if local == nil {
		local = LocationZone{Location: time.Local}
	}
	return &Parser{local: local}
}

var defaultParser = NewParser(nil)

// ParseAt parse input, taking any date it lacks from reference. Only the
// calendar date of reference, in its own location, is used.
func (p *Parser) ParseAt(input string, reference time.Time) (ts Timestamp, err error) {
	e, ok := match(input)
	if !ok {
		err = newParseError(ErrUnparsable, input)
		return
	}

	zone, err := resolveZone(e.zone, p.local)
	if err != nil {
		return
	}

	c, err := complete(e, reference)
	if err != nil {
		err = newParseError(err, input)
		return
	}

	ts, err = compose(c, zone)
	if err != nil {
		err = newParseError(err, input)
		return
	}

	return
}

// In t on the calendar of the ambient zone. Passing the result to ParseAt
// makes inputs without a date take the ambient zone's date.
func (p *Parser) In(t time.Time) time.Time {
	return p.local.In(t)
}

// Parse parse input with the current time in the ambient zone as reference
func (p *Parser) Parse(input string) (Timestamp, error) {
	return p.ParseAt(input, p.In(time.Now()))
}

// ParseAt parse input in the host local zone with reference supplying any
// missing date.
func ParseAt(input string, reference time.Time) (Timestamp, error) {
	return defaultParser.ParseAt(input, reference)
}

// Parse parse input in the host local zone with the current time as
// reference.
func Parse(input string) (Timestamp, error) {
	return defaultParser.Parse(input)
}
