package modeltime

import (
	"fmt"
	"strings"
	"time"
)

// MODFLOW ITMUNI time unit codes
const (
	ITMUNIUndefined = 0
	ITMUNISeconds   = 1
	ITMUNIMinutes   = 2
	ITMUNIHours     = 3
	ITMUNIDays      = 4
	ITMUNIYears     = 5
)

var itmuniValues = map[string]int{
	"undefined": ITMUNIUndefined,
	"seconds":   ITMUNISeconds,
	"minutes":   ITMUNIMinutes,
	"hours":     ITMUNIHours,
	"days":      ITMUNIDays,
	"years":     ITMUNIYears,
}

// unitDurations gives the length of one time unit. Years are Julian years.
var unitDurations = map[int]time.Duration{
	ITMUNISeconds: time.Second,
	ITMUNIMinutes: time.Minute,
	ITMUNIHours:   time.Hour,
	ITMUNIDays:    24 * time.Hour,
	ITMUNIYears:   time.Duration(365.25 * 24 * float64(time.Hour)),
}

// ITMUNI returns the code for a time unit label, ignoring case
func ITMUNI(units string) (int, bool) {
	code, ok := itmuniValues[strings.ToLower(strings.TrimSpace(units))]
	return code, ok
}

// UnitsFromITMUNI returns the label for an ITMUNI code
func UnitsFromITMUNI(code int) (string, bool) {
	for label, c := range itmuniValues {
		if c == code {
			return label, true
		}
	}
	return "", false
}

// ITMUNI returns the code for the model's time unit label
func (mt *ModelTime) ITMUNI() (int, bool) {
	return ITMUNI(mt.timeUnits)
}

func unitDuration(units string) (time.Duration, error) {
	code, ok := ITMUNI(units)
	if !ok {
		return 0, fmt.Errorf("unrecognized time units %q", units)
	}
	d, ok := unitDurations[code]
	if !ok {
		return 0, fmt.Errorf("time units %q have no fixed length", units)
	}
	return d, nil
}
