package modeltime

// SteadyState is passed through unchanged from the caller. It is either unset,
// a single flag for the whole simulation, or one flag per stress period.
type SteadyState struct {
	Uniform   *bool
	PerPeriod []bool
}

// UniformSteadyState applies one flag to every period
func UniformSteadyState(steady bool) SteadyState {
	return SteadyState{Uniform: &steady}
}

// PerPeriodSteadyState gives each period its own flag
func PerPeriodSteadyState(flags []bool) SteadyState {
	return SteadyState{PerPeriod: append([]bool(nil), flags...)}
}

// IsSet reports whether any steady-state information was given
func (s SteadyState) IsSet() bool {
	return s.Uniform != nil || len(s.PerPeriod) > 0
}

// At returns the flag for period kper. ok is false when no flag applies.
func (s SteadyState) At(kper int) (steady, ok bool) {
	if len(s.PerPeriod) > 0 {
		if kper < 0 || kper >= len(s.PerPeriod) {
			return false, false
		}
		return s.PerPeriod[kper], true
	}
	if s.Uniform != nil {
		return *s.Uniform, true
	}
	return false, false
}
