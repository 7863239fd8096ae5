package iso8601

import (
	"github.com/dlclark/regexp2"
)

// Pattern fragments. They are compiled with IgnorePatternWhitespace so the
// layout below is not significant. Digits are spelled [0-9] since \d matches
// any Unicode digit in regexp2.

const dateExtended = `
(?<date>
	(?<year>[0-9]{4})
	(?:
		-(?<month>[0-9]{2})
		(?:-(?<day>[0-9]{2}))?
	|
		-(?<ordinal>[0-9]{3})
	|
		-W(?<week>[0-9]{2})
		(?:-(?<weekday>[0-9]))?
	)?
)`

const dateBasic = `
(?<date>
	(?<year>[0-9]{4})
	(?:
		(?<month>[0-9]{2})
		(?<day>[0-9]{2})?
	|
		(?<ordinal>[0-9]{3})
	|
		W(?<week>[0-9]{2})
		(?<weekday>[0-9])?
	)?
)`

const timeExtended = `
(?<time>
	(?<hour>[0-9]{2})
	(?:
		:(?<minute>[0-9]{2})
		(?:
			:(?<second>[0-9]{2})
			(?:[,.](?<fraction>[0-9]+))?
		)?
	)?
)`

const timeBasic = `
(?<time>
	(?<hour>[0-9]{2})
	(?:
		(?<minute>[0-9]{2})
		(?:
			(?<second>[0-9]{2})
			(?<fraction>[0-9]+)?
		)?
	)?
)`

const zoneExtended = `
(?<zone>
	Z
|
	[+-][0-9]{2}
	(?::[0-9]{2})?
)`

const zoneBasic = `
(?<zone>
	Z
|
	[+-][0-9]{2}
	(?:[0-9]{2})?
)`

// Accepts either separator style. Used on its own and to take apart zone
// fragments captured by the other variants.
const zoneAny = `
(?<zone>
	Z
|
	(?<sign>[+-])
	(?<zonehour>[0-9]{2})
	(?::?(?<zoneminute>[0-9]{2}))?
)`

// variant a single anchored grammar
type variant struct {
	name    string
	hasDate bool
	re      *regexp2.Regexp
}

func newVariant(name string, hasDate bool, parts ...string) variant {
	expr := `\A`
	for _, p := range parts {
		expr += p
	}
	expr += `\z`

	return variant{
		name:    name,
		hasDate: hasDate,
		re:      regexp2.MustCompile(expr, regexp2.IgnorePatternWhitespace),
	}
}

// Variant names
const (
	VariantDateTimeExtended = "datetime-extended"
	VariantDateTimeBasic    = "datetime-basic"
	VariantTimeExtended     = "time-extended"
	VariantTimeBasic        = "time-basic"
	VariantZone             = "zone"
)

// The order is the precedence. The first variant to match the whole input
// wins and no other is tried.
var grammar = []variant{
	newVariant(VariantDateTimeExtended, true, dateExtended, `(?:T`, timeExtended, zoneExtended, `?)?`),
	newVariant(VariantDateTimeBasic, true, dateBasic, `(?:T`, timeBasic, zoneBasic, `?)?`),
	newVariant(VariantTimeExtended, false, `T?`, timeExtended, zoneExtended, `?`),
	newVariant(VariantTimeBasic, false, `T?`, timeBasic, zoneBasic, `?`),
	newVariant(VariantZone, false, `T?`, zoneAny, `?`),
}

// zoneVariant is the last grammar entry
var zoneVariant = grammar[len(grammar)-1]

// extracted holds the captures of one match. Every group in the grammar
// consumes at least one character so an empty string means the field was
// absent from the input.
type extracted struct {
	variant string
	hasDate bool

	year    string
	month   string
	day     string
	ordinal string
	week    string
	weekday string

	hour     string
	minute   string
	second   string
	fraction string

	zone string
}

// group returns the text captured by name or "" when the group is not part
// of the pattern or did not participate in the match.
func group(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// match tries the variants in order and extracts the fields of the first
// one matching the entire input.
func match(input string) (e extracted, ok bool) {
	for _, v := range grammar {
		m, err := v.re.FindStringMatch(input)
		if err != nil || m == nil {
			continue
		}

		e = extracted{
			variant: v.name,
			hasDate: v.hasDate,

			year:    group(m, "year"),
			month:   group(m, "month"),
			day:     group(m, "day"),
			ordinal: group(m, "ordinal"),
			week:    group(m, "week"),
			weekday: group(m, "weekday"),

			hour:     group(m, "hour"),
			minute:   group(m, "minute"),
			second:   group(m, "second"),
			fraction: group(m, "fraction"),

			zone: group(m, "zone"),
		}

		return e, true
	}

	return extracted{}, false
}

// Variant reports the name of the grammar variant input would be parsed
// with, or "" if there is none.
func Variant(input string) string {
	e, ok := match(input)
	if !ok {
		return ""
	}
	return e.variant
}
