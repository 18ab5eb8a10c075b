package startmoment

import (
	"errors"
	"fmt"
)

// ErrRepresentation is the sentinel every RepresentationError unwraps to
var ErrRepresentation = errors.New("operation not supported by start moment representation")

// RepresentationError reports a date-only or time-only operation that the
// current start moment representation cannot perform.
type RepresentationError struct {
	Op    string // "get date", "set time", ...
	Kind  Kind   // representation of the current start moment
	Value string // current value, if any
	Arg   Kind   // representation of the rejected argument, for set operations
}

func (e *RepresentationError) Error() string {
	msg := fmt.Sprintf("cannot %s on %s start moment", e.Op, e.Kind)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Arg != KindUnset {
		msg += fmt.Sprintf(" with %s argument", e.Arg)
	}
	return msg
}

func (e *RepresentationError) Unwrap() error {
	return ErrRepresentation
}

type kinded interface {
	Kind() Kind
	String() string
}

func mismatch(op string, current, arg kinded) error {
	e := &RepresentationError{Op: op, Kind: current.Kind(), Value: current.String()}
	if arg != nil {
		e.Arg = arg.Kind()
	}
	return e
}
