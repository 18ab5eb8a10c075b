package modeltime

import (
	"fmt"
	"math"
	"time"

	"github.com/chrissnell/modeltime/pkg/schedule"
	"github.com/chrissnell/modeltime/pkg/startmoment"
)

// ComputeStepDateTimes returns the calendar moment at the end of every time
// step, counting totim in the model's time units from the start moment. A text
// start moment is parsed first.
func (mt *ModelTime) ComputeStepDateTimes() ([]time.Time, error) {
	start, err := startmoment.ToStructured(mt.start.DateTime())
	if err != nil {
		return nil, err
	}
	unit, err := unitDuration(mt.timeUnits)
	if err != nil {
		return nil, err
	}

	totim, err := schedule.ComputeTotim(mt.periods)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, len(totim))
	for k, t := range totim {
		elapsed := t * float64(unit)
		if elapsed >= math.MaxInt64 || elapsed < math.MinInt64 {
			return nil, fmt.Errorf("step %d: elapsed time %g %s overflows", k, t, mt.timeUnits)
		}
		out[k] = start.Time.Add(time.Duration(elapsed))
	}
	return out, nil
}
