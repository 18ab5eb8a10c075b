package modeltime

import (
	"fmt"

	"github.com/chrissnell/modeltime/internal/log"
	"github.com/chrissnell/modeltime/pkg/reference"
	"github.com/chrissnell/modeltime/pkg/startmoment"
)

// attribSetter applies one ingested value to a ModelTime
type attribSetter func(mt *ModelTime, value string) error

// ingestRule binds a ModelTime attribute to the metadata keys that may carry
// it. Keys are tried in order and the first non-empty one wins.
type ingestRule struct {
	attr  string
	keys  []string
	apply attribSetter
}

// namefileRules coalesces every historical start spelling into one full
// start moment assignment.
var namefileRules = []ingestRule{
	{attr: "start_datetime", keys: []string{"start_datetime", "start_date", "start"}, apply: setStartDateTime},
}

// referenceRules are applied in order: the full start moment first so that a
// start_time key only replaces the time-of-day of the new moment.
var referenceRules = []ingestRule{
	{attr: "start_datetime", keys: []string{"start_date"}, apply: setStartDateTime},
	{attr: "start_time", keys: []string{"start_time"}, apply: setStartTime},
	{attr: "time_units", keys: []string{"time_units"}, apply: setTimeUnits},
}

func setStartDateTime(mt *ModelTime, value string) error {
	mt.start.SetDateTime(startmoment.Text(value))
	return nil
}

func setStartTime(mt *ModelTime, value string) error {
	clock, err := startmoment.ClockFor(mt.start.DateTime(), startmoment.Text(value))
	if err != nil {
		return err
	}
	return mt.start.SetClock(clock)
}

func setTimeUnits(mt *ModelTime, value string) error {
	mt.timeUnits = value
	return nil
}

func (mt *ModelTime) applyRules(source string, ref reference.Attribs, rules []ingestRule) {
	for _, rule := range rules {
		for _, key := range rule.keys {
			val, ok := ref.String(key)
			if !ok {
				continue
			}

			if err := rule.apply(mt, val); err != nil {
				log.Debugw("skipping metadata value", "source", source, "key", key, "value", val, "error", err)
			} else {
				log.Debugw("applied metadata value", "source", source, "attr", rule.attr, "key", key, "value", val)
			}
			// Only the first key found for an attribute is used
			break
		}
	}
}

// IngestNamefileMetadata applies the start moment found in name file header
// metadata. A nil map is a no-op and returns false. Keys that are absent or
// empty leave the ModelTime unchanged.
func (mt *ModelTime) IngestNamefileMetadata(ref reference.Attribs) bool {
	if ref == nil {
		return false
	}
	mt.applyRules("namefile", ref, namefileRules)
	return true
}

// IngestReferenceFileMetadata applies the start moment, start time-of-day and
// time units found in USGS model reference metadata. reference.NotFound
// returns false. Keys that are absent or empty leave the ModelTime unchanged.
func (mt *ModelTime) IngestReferenceFileMetadata(ref reference.Attribs) bool {
	if ref == nil {
		return false
	}
	mt.applyRules("reference", ref, referenceRules)
	return true
}

// AttribsFromNamfileHeader reads the header of the name file at path and
// ingests it. An empty path is a no-op.
func (mt *ModelTime) AttribsFromNamfileHeader(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	ref, err := reference.ReadNamefileHeader(path)
	if err != nil {
		return false, fmt.Errorf("error reading name file header: %w", err)
	}
	return mt.IngestNamefileMetadata(ref), nil
}

// ReadUSGSModelReferenceFile reads the reference file at path, or
// reference.DefaultReferenceFile when path is empty, and ingests it. A missing
// file returns false without error.
func (mt *ModelTime) ReadUSGSModelReferenceFile(path string) (bool, error) {
	if path == "" {
		path = reference.DefaultReferenceFile
	}
	ref, err := reference.ReadUSGSModelReference(path)
	if err != nil {
		return false, fmt.Errorf("error reading model reference file: %w", err)
	}
	return mt.IngestReferenceFileMetadata(ref), nil
}
