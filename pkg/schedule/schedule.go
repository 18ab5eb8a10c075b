// Package schedule computes the temporal discretization of a simulation that is
// split into stress periods, each divided into time steps whose lengths grow
// geometrically by a per-period multiplier.
package schedule

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PeriodData holds the three parallel per-period sequences
type PeriodData struct {
	Perlen []float64 `json:"perlen" yaml:"perlen"` // total length of each period, in time units
	Nstp   []int     `json:"nstp" yaml:"nstp"`     // number of time steps in each period
	Tsmult []float64 `json:"tsmult" yaml:"tsmult"` // step-to-step growth factor in each period
}

// Nper returns the number of stress periods
func (p PeriodData) Nper() int {
	return len(p.Perlen)
}

// NumSteps returns the total number of time steps across all periods
func (p PeriodData) NumSteps() int {
	n := 0
	for _, s := range p.Nstp {
		n += s
	}
	return n
}

// Validate checks that the sequences line up and every period can be stepped
func (p PeriodData) Validate() error {
	if len(p.Nstp) != len(p.Perlen) {
		return &ValidationError{Field: "nstp", Period: -1,
			Reason: lengthMismatch(len(p.Nstp), len(p.Perlen))}
	}
	if len(p.Tsmult) != len(p.Perlen) {
		return &ValidationError{Field: "tsmult", Period: -1,
			Reason: lengthMismatch(len(p.Tsmult), len(p.Perlen))}
	}

	for i := range p.Perlen {
		if p.Nstp[i] < 1 {
			return &ValidationError{Field: "nstp", Period: i, Reason: "must be at least 1"}
		}
		if !(p.Tsmult[i] > 0) || math.IsInf(p.Tsmult[i], 0) {
			return &ValidationError{Field: "tsmult", Period: i, Reason: "must be a finite value greater than 0"}
		}
		if math.IsNaN(p.Perlen[i]) || math.IsInf(p.Perlen[i], 0) {
			return &ValidationError{Field: "perlen", Period: i, Reason: "must be finite"}
		}
	}

	return nil
}

// StepDurations returns the length of every time step as one flat sequence
// ordered by period, then step.
func StepDurations(p PeriodData) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	delt := make([]float64, 0, p.NumSteps())
	for i, nstp := range p.Nstp {
		steps := periodSteps(p.Perlen[i], nstp, p.Tsmult[i])
		for _, dt := range steps {
			if math.IsNaN(dt) || math.IsInf(dt, 0) {
				return nil, &ValidationError{Field: "tsmult", Period: i, Reason: "produces non-finite step lengths"}
			}
		}
		delt = append(delt, steps...)
	}

	return delt, nil
}

// periodSteps splits perlen into nstp steps in geometric progression. A growing
// period is built backward from its last step so tsmult^nstp never overflows;
// early steps may underflow to zero but the lengths still sum to perlen.
func periodSteps(perlen float64, nstp int, tsmult float64) []float64 {
	steps := make([]float64, nstp)
	n := float64(nstp)
	logMult := math.Log1p(tsmult - 1)
	switch {
	case tsmult == 1.0:
		for stp := range steps {
			steps[stp] = perlen / n
		}
	case tsmult > 1.0:
		steps[nstp-1] = perlen * ((tsmult - 1) / tsmult) / -math.Expm1(-n*logMult)
		for stp := nstp - 2; stp >= 0; stp-- {
			steps[stp] = steps[stp+1] / tsmult
		}
	default:
		steps[0] = perlen * (1 - tsmult) / -math.Expm1(n*logMult)
		for stp := 1; stp < nstp; stp++ {
			steps[stp] = steps[stp-1] * tsmult
		}
	}
	return steps
}

// ComputeTotim returns the cumulative simulation time at the end of every time
// step. The running total carries across period boundaries. The result is
// recomputed from the period data on every call.
func ComputeTotim(p PeriodData) ([]float64, error) {
	delt, err := StepDurations(p)
	if err != nil {
		return nil, err
	}

	totim := make([]float64, len(delt))
	if len(delt) == 0 {
		return totim, nil
	}
	return floats.CumSum(totim, delt), nil
}

// ComputeTslen recovers the length of each time step from a cumulative time
// sequence as produced by ComputeTotim.
func ComputeTslen(totim []float64) []float64 {
	tslen := make([]float64, len(totim))
	for k := range totim {
		if k == 0 {
			tslen[k] = totim[k]
			continue
		}
		tslen[k] = totim[k] - totim[k-1]
	}
	return tslen
}

// PeriodSums adds up the step lengths belonging to each period. For a valid
// schedule each sum equals the period's perlen within floating-point tolerance.
func PeriodSums(tslen []float64, nstp []int) ([]float64, error) {
	total := 0
	for _, n := range nstp {
		total += n
	}
	if total != len(tslen) {
		return nil, &ValidationError{Field: "tslen", Period: -1, Reason: lengthMismatch(len(tslen), total)}
	}

	sums := make([]float64, len(nstp))
	start := 0
	for i, n := range nstp {
		sums[i] = floats.Sum(tslen[start : start+n])
		start += n
	}
	return sums, nil
}
