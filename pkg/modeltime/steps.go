package modeltime

import (
	"time"

	"github.com/chrissnell/modeltime/pkg/schedule"
)

// Step labels one time step of the simulation
type Step struct {
	Kper        int        `json:"kper"`
	Kstp        int        `json:"kstp"`
	Totim       float64    `json:"totim"`
	Tslen       float64    `json:"tslen"`
	SteadyState *bool      `json:"steady_state,omitempty"`
	DateTime    *time.Time `json:"datetime,omitempty"`
}

// StepTable is the labeled time discretization of a simulation
type StepTable struct {
	TimeUnits     string `json:"time_units"`
	StartDateTime string `json:"start_datetime,omitempty"`
	Steps         []Step `json:"steps"`
}

// ComputeStepTable labels every time step with its period, step, cumulative
// time and length. Calendar date-times are filled in when the start moment and
// time units allow it.
func (mt *ModelTime) ComputeStepTable() (*StepTable, error) {
	totim, err := schedule.ComputeTotim(mt.periods)
	if err != nil {
		return nil, err
	}
	tslen := schedule.ComputeTslen(totim)

	// Date-times are optional labels
	datetimes, err := mt.ComputeStepDateTimes()
	if err != nil {
		datetimes = nil
	}

	table := &StepTable{
		TimeUnits:     mt.timeUnits,
		StartDateTime: mt.start.String(),
		Steps:         make([]Step, 0, len(totim)),
	}

	k := 0
	for kper, nstp := range mt.periods.Nstp {
		var steady *bool
		if flag, ok := mt.steadyState.At(kper); ok {
			steady = &flag
		}

		for kstp := 0; kstp < nstp; kstp++ {
			step := Step{
				Kper:        kper,
				Kstp:        kstp,
				Totim:       totim[k],
				Tslen:       tslen[k],
				SteadyState: steady,
			}
			if datetimes != nil {
				step.DateTime = &datetimes[k]
			}
			table.Steps = append(table.Steps, step)
			k++
		}
	}

	return table, nil
}
