package iso8601

import (
	"time"

	"github.com/imarsman/iso8601/pkg/utility"
	"lab.nexedi.com/kirr/go123/xfmt"
)

// Example an input and the String form it must parse to
type Example struct {
	Input string
	Want  string
}

// ExampleReference the reference time Examples are checked against
var ExampleReference = time.Date(1950, time.February, 27, 14, 17, 22, 110*int(time.Microsecond), time.UTC)

// Examples parsed with CentralEuropeanZone as the ambient zone and
// ExampleReference as the reference.
var Examples = []Example{
	{"1997", "1997-01-01 00:00:00+01:00"},
	{"199707", "1997-07-01 00:00:00+02:00"},
	{"1997-07", "1997-07-01 00:00:00+02:00"},
	{"19970731", "1997-07-31 00:00:00+02:00"},
	{"1997-07-31", "1997-07-31 00:00:00+02:00"},
	{"1997206", "1997-07-25 00:00:00+02:00"},
	{"1997-206", "1997-07-25 00:00:00+02:00"},
	{"2004W453", "2004-11-03 00:00:00+01:00"},
	{"2004-W45-3", "2004-11-03 00:00:00+01:00"},
	{"19970716T1920", "1997-07-16 19:20:00+02:00"},
	{"1997-07-16T19:20", "1997-07-16 19:20:00+02:00"},
	{"19970716T192030", "1997-07-16 19:20:30+02:00"},
	{"1997-07-16T19:20:30", "1997-07-16 19:20:30+02:00"},
	{"19970716T192030423", "1997-07-16 19:20:30.423000+02:00"},
	{"1997-07-16T19:20:30,4", "1997-07-16 19:20:30.400000+02:00"},
	{"19970716T1920+0100", "1997-07-16 19:20:00+01:00"},
	{"1997-07-16T19:20+01:00", "1997-07-16 19:20:00+01:00"},
	{"19970716T192030+0100", "1997-07-16 19:20:30+01:00"},
	{"1997-07-16T19:20:30+01:00", "1997-07-16 19:20:30+01:00"},
	{"T19+0100", "1950-02-27 19:00:00+01:00"},
	{"T19+01:00", "1950-02-27 19:00:00+01:00"},
	{"T1920+0100", "1950-02-27 19:20:00+01:00"},
	{"T19:20+01:00", "1950-02-27 19:20:00+01:00"},
	{"T192030+0100", "1950-02-27 19:20:30+01:00"},
	{"T19:20:30+01:00", "1950-02-27 19:20:30+01:00"},
	{"T1920304+0100", "1950-02-27 19:20:30.400000+01:00"},
	{"T19:20:30,4+01:00", "1950-02-27 19:20:30.400000+01:00"},
	{"T19:20:30Z", "1950-02-27 19:20:30+00:00"},
}

// ExampleFailure an example that did not parse to what it should
type ExampleFailure struct {
	Example
	Got string
	Err error
}

func (f ExampleFailure) String() string {
	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S("input ").S(f.Input).S(" want ").S(f.Want)
	if f.Err != nil {
		xfmtBuf.S(" error ").S(f.Err.Error())
	} else {
		xfmtBuf.S(" got ").S(f.Got)
	}

	return utility.BytesToString(xfmtBuf.Bytes()...)
}

// CheckExamples parse every entry of Examples and return those that fail
func CheckExamples() []ExampleFailure {
	p := NewParser(CentralEuropeanZone)

	var failures []ExampleFailure
	for _, ex := range Examples {
		ts, err := p.ParseAt(ex.Input, ExampleReference)
		if err != nil {
			failures = append(failures, ExampleFailure{Example: ex, Err: err})
			continue
		}
		if got := ts.String(); got != ex.Want {
			failures = append(failures, ExampleFailure{Example: ex, Got: got})
		}
	}

	return failures
}
