package schedule

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every ValidationError unwraps to
var ErrValidation = errors.New("invalid period data")

// ValidationError reports period data that cannot produce a time-step schedule.
// Period is -1 when the problem is not tied to a single period.
type ValidationError struct {
	Field  string
	Period int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Period < 0 {
		return fmt.Sprintf("invalid period data: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid period data: %s[%d] %s", e.Field, e.Period, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func lengthMismatch(got, want int) string {
	return fmt.Sprintf("has length %d, expected %d", got, want)
}
