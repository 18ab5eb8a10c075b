// Package startmoment holds a simulation start date-time that can be read or
// changed through its date or its time-of-day independently.
//
// A start moment has one of two representations. Structured wraps a time.Time
// and splits into a midnight-truncated Structured date and an Offset from
// midnight. Text wraps an ISO-8601-like string "YYYY-MM-DD[THH:MM:SS]" and
// splits on the "T" separator into two Text parts. Mutating one part keeps the
// other part and the representation intact.
package startmoment

import (
	"strings"
	"time"
)

// Kind identifies the representation of a Moment
type Kind int

const (
	KindUnset Kind = iota
	KindStructured
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindText:
		return "text"
	default:
		return "unset"
	}
}

// Separator divides the date from the time-of-day in the text representation
const Separator = "T"

// EpochDate is the date assumed when only a time-of-day is given
const EpochDate = "1970-01-01"

// MidnightClock is the time-of-day assumed when only a date is given
const MidnightClock = "00:00:00"

// Moment is a full start date-time in one of the two representations
type Moment interface {
	Kind() Kind
	String() string

	// Date returns the date portion in the same representation
	Date() (Moment, error)
	// Clock returns the time-of-day portion
	Clock() (Clock, error)
	// WithDate replaces the date portion, keeping the time-of-day
	WithDate(date Moment) (Moment, error)
	// WithClock replaces the time-of-day portion, keeping the date
	WithClock(clock Clock) (Moment, error)
}

// Clock is a time-of-day value: an Offset for structured moments and a Text
// for text moments.
type Clock interface {
	Kind() Kind
	String() string
}

// Structured is a start moment held as a time.Time
type Structured struct {
	Time time.Time
}

// Offset is the time elapsed since midnight of a Structured moment
type Offset time.Duration

// Text is a start moment, date or time-of-day held as a string
type Text string

var (
	_ Moment = Structured{}
	_ Moment = Text("")
	_ Clock  = Offset(0)
	_ Clock  = Text("")
)

// NewStructured wraps t
func NewStructured(t time.Time) Structured {
	return Structured{Time: t}
}

func (s Structured) Kind() Kind { return KindStructured }

func (s Structured) String() string {
	return s.Time.Format("2006-01-02T15:04:05.999999999")
}

func (s Structured) midnight() time.Time {
	y, m, d := s.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Time.Location())
}

func (s Structured) Date() (Moment, error) {
	return Structured{Time: s.midnight()}, nil
}

func (s Structured) Clock() (Clock, error) {
	return Offset(s.Time.Sub(s.midnight())), nil
}

func (s Structured) WithDate(date Moment) (Moment, error) {
	d, ok := date.(Structured)
	if !ok {
		return nil, mismatch("set date", s, date)
	}
	dm := d.midnight()
	return Structured{Time: dm.Add(s.Time.Sub(s.midnight()))}, nil
}

func (s Structured) WithClock(clock Clock) (Moment, error) {
	o, ok := clock.(Offset)
	if !ok {
		return nil, mismatch("set time", s, clock)
	}
	// An offset outside one day would move the date
	if o < 0 || time.Duration(o) >= 24*time.Hour {
		return nil, &RepresentationError{Op: "set time", Kind: KindStructured, Value: s.String(), Arg: KindStructured}
	}
	return Structured{Time: s.midnight().Add(time.Duration(o))}, nil
}

func (o Offset) Kind() Kind { return KindStructured }

// String renders the offset as HH:MM:SS with fractional seconds when present
func (o Offset) String() string {
	d := time.Duration(o)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	if d >= 24*time.Hour {
		return sign + d.String()
	}
	return sign + time.Time{}.Add(d).Format("15:04:05.999999999")
}

func (t Text) Kind() Kind { return KindText }

func (t Text) String() string { return string(t) }

func (t Text) split() (date, clock string, ok bool) {
	return strings.Cut(string(t), Separator)
}

func (t Text) Date() (Moment, error) {
	date, _, ok := t.split()
	if !ok {
		return nil, &RepresentationError{Op: "get date", Kind: KindText, Value: string(t)}
	}
	return Text(date), nil
}

func (t Text) Clock() (Clock, error) {
	_, clock, ok := t.split()
	if !ok {
		return nil, &RepresentationError{Op: "get time", Kind: KindText, Value: string(t)}
	}
	return Text(clock), nil
}

func (t Text) WithDate(date Moment) (Moment, error) {
	d, ok := date.(Text)
	if !ok {
		return nil, mismatch("set date", t, date)
	}
	if strings.Contains(string(d), Separator) {
		return nil, &RepresentationError{Op: "set date", Kind: KindText, Value: string(t), Arg: KindText}
	}
	_, clock, found := t.split()
	if !found {
		clock = MidnightClock
	}
	return Text(string(d) + Separator + clock), nil
}

func (t Text) WithClock(clock Clock) (Moment, error) {
	c, ok := clock.(Text)
	if !ok {
		return nil, mismatch("set time", t, clock)
	}
	if strings.Contains(string(c), Separator) {
		return nil, &RepresentationError{Op: "set time", Kind: KindText, Value: string(t), Arg: KindText}
	}
	date, _, _ := t.split()
	return Text(date + Separator + string(c)), nil
}

// epochFor returns the default moment a time-of-day is combined with when the
// start moment is unset.
func epochFor(clock Clock) (Moment, error) {
	switch clock.(type) {
	case Text:
		return Text(EpochDate), nil
	case Offset:
		return Structured{Time: time.Unix(0, 0).UTC()}, nil
	default:
		return nil, &RepresentationError{Op: "set time", Kind: KindUnset}
	}
}
