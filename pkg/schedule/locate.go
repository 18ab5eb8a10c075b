package schedule

import "fmt"

// Locate maps a flat step index (as used by totim and tslen) to its zero-based
// stress period and time step.
func Locate(nstp []int, k int) (kper, kstp int, err error) {
	if k < 0 {
		return 0, 0, fmt.Errorf("step index %d out of range", k)
	}

	for kper, n := range nstp {
		if k < n {
			return kper, k, nil
		}
		k -= n
	}
	return 0, 0, fmt.Errorf("step index out of range: schedule has %d periods", len(nstp))
}

// FlatIndex is the inverse of Locate
func FlatIndex(nstp []int, kper, kstp int) (int, error) {
	if kper < 0 || kper >= len(nstp) {
		return 0, fmt.Errorf("stress period %d out of range [0, %d)", kper, len(nstp))
	}
	if kstp < 0 || kstp >= nstp[kper] {
		return 0, fmt.Errorf("time step %d out of range [0, %d) in period %d", kstp, nstp[kper], kper)
	}

	k := kstp
	for _, n := range nstp[:kper] {
		k += n
	}
	return k, nil
}
