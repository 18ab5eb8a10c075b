// Package modeltime aggregates the temporal setup of a MODFLOW-style
// simulation: stress period data, the start moment, the time unit label and the
// steady-state flags. Metadata from a name file header and a USGS model
// reference file can be layered on top.
package modeltime

import (
	"fmt"

	"github.com/chrissnell/modeltime/pkg/schedule"
	"github.com/chrissnell/modeltime/pkg/startmoment"
)

// DefaultTimeUnits is the unit label used when none is given
const DefaultTimeUnits = "days"

// ModelTime holds the simulation time discretization
type ModelTime struct {
	periods     schedule.PeriodData
	timeUnits   string
	start       *startmoment.StartMoment
	steadyState SteadyState
}

// Option configures a ModelTime at construction
type Option func(*ModelTime)

// WithTimeUnits sets the time unit label
func WithTimeUnits(units string) Option {
	return func(mt *ModelTime) {
		mt.timeUnits = units
	}
}

// WithStart sets the start moment
func WithStart(m startmoment.Moment) Option {
	return func(mt *ModelTime) {
		mt.start.SetDateTime(m)
	}
}

// WithSteadyState sets the steady-state flags
func WithSteadyState(ss SteadyState) Option {
	return func(mt *ModelTime) {
		mt.steadyState = ss
	}
}

// New creates a ModelTime over periods. The period data is validated here so
// that later schedule computations cannot fail on it.
func New(periods schedule.PeriodData, opts ...Option) (*ModelTime, error) {
	if err := periods.Validate(); err != nil {
		return nil, err
	}

	mt := &ModelTime{
		periods: schedule.PeriodData{
			Perlen: append([]float64(nil), periods.Perlen...),
			Nstp:   append([]int(nil), periods.Nstp...),
			Tsmult: append([]float64(nil), periods.Tsmult...),
		},
		timeUnits: DefaultTimeUnits,
		start:     startmoment.New(nil),
	}
	for _, opt := range opts {
		opt(mt)
	}

	if n := len(mt.steadyState.PerPeriod); n > 0 && n != periods.Nper() {
		return nil, &schedule.ValidationError{Field: "steady_state", Period: -1,
			Reason: fmt.Sprintf("has length %d, expected %d", n, periods.Nper())}
	}

	return mt, nil
}

// TimeUnits returns the time unit label
func (mt *ModelTime) TimeUnits() string {
	return mt.timeUnits
}

// SetTimeUnits replaces the time unit label
func (mt *ModelTime) SetTimeUnits(units string) {
	mt.timeUnits = units
}

// Start returns the start moment. Its date and time views can be read and
// changed through the returned value.
func (mt *ModelTime) Start() *startmoment.StartMoment {
	return mt.start
}

// StartDateTime returns the full start moment, or nil when unset
func (mt *ModelTime) StartDateTime() startmoment.Moment {
	return mt.start.DateTime()
}

// SetStartDateTime replaces the full start moment
func (mt *ModelTime) SetStartDateTime(m startmoment.Moment) {
	mt.start.SetDateTime(m)
}

// StartDate returns the date portion of the start moment
func (mt *ModelTime) StartDate() (startmoment.Moment, error) {
	return mt.start.Date()
}

// SetStartDate replaces the date portion of the start moment
func (mt *ModelTime) SetStartDate(date startmoment.Moment) error {
	return mt.start.SetDate(date)
}

// StartTime returns the time-of-day portion of the start moment
func (mt *ModelTime) StartTime() (startmoment.Clock, error) {
	return mt.start.Clock()
}

// SetStartTime replaces the time-of-day portion of the start moment
func (mt *ModelTime) SetStartTime(clock startmoment.Clock) error {
	return mt.start.SetClock(clock)
}

// PeriodData returns a copy of the stress period data
func (mt *ModelTime) PeriodData() schedule.PeriodData {
	return schedule.PeriodData{
		Perlen: mt.Perlen(),
		Nstp:   mt.Nstp(),
		Tsmult: mt.Tsmult(),
	}
}

// Perlen returns a copy of the period lengths
func (mt *ModelTime) Perlen() []float64 {
	return append([]float64(nil), mt.periods.Perlen...)
}

// Nper returns the number of stress periods
func (mt *ModelTime) Nper() int {
	return mt.periods.Nper()
}

// Nstp returns a copy of the step counts per period
func (mt *ModelTime) Nstp() []int {
	return append([]int(nil), mt.periods.Nstp...)
}

// Tsmult returns a copy of the step multipliers per period
func (mt *ModelTime) Tsmult() []float64 {
	return append([]float64(nil), mt.periods.Tsmult...)
}

// SteadyState returns the steady-state flag passed through at construction
func (mt *ModelTime) SteadyState() SteadyState {
	return mt.steadyState
}

// ComputeTotim returns the cumulative time at the end of every time step. It
// walks every step of every period on each call.
func (mt *ModelTime) ComputeTotim() ([]float64, error) {
	return schedule.ComputeTotim(mt.periods)
}

// ComputeTslen returns the length of every time step. It walks every step of
// every period on each call.
func (mt *ModelTime) ComputeTslen() ([]float64, error) {
	totim, err := schedule.ComputeTotim(mt.periods)
	if err != nil {
		return nil, err
	}
	return schedule.ComputeTslen(totim), nil
}
