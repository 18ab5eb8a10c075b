package startmoment

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseText, tried in order. Single-digit month and day
// are allowed since older headers wrote dates like 1970-1-1.
var dateTimeLayouts = []string{
	"2006-1-2T15:04:05.999999999",
	"2006-1-2T15:04",
	"2006-1-2",
}

var clockLayouts = []string{
	"15:04:05.999999999",
	"15:04",
}

// ParseText converts a text start moment into its structured form in UTC
func ParseText(t Text) (Structured, error) {
	s := strings.TrimSpace(string(t))
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return Structured{Time: parsed}, nil
		}
	}
	return Structured{}, fmt.Errorf("unable to parse start moment %q", s)
}

// ParseClock converts a text time-of-day into an Offset
func ParseClock(t Text) (Offset, error) {
	s := strings.TrimSpace(string(t))
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			y, m, d := parsed.Date()
			return Offset(parsed.Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))), nil
		}
	}
	return 0, fmt.Errorf("unable to parse time of day %q", s)
}

// ToStructured returns m in structured form, parsing a text moment if needed
func ToStructured(m Moment) (Structured, error) {
	switch v := m.(type) {
	case Structured:
		return v, nil
	case Text:
		return ParseText(v)
	case nil:
		return Structured{}, &RepresentationError{Op: "convert", Kind: KindUnset}
	default:
		return Structured{}, fmt.Errorf("unknown start moment type %T", m)
	}
}

// ClockFor converts a text time-of-day into the Clock form that matches the
// representation of current. A nil current keeps the text form.
func ClockFor(current Moment, clock Text) (Clock, error) {
	if current == nil || current.Kind() == KindText {
		return clock, nil
	}
	return ParseClock(clock)
}
