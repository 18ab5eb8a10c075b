// Package reference reads model reference metadata from a MODFLOW name file
// header and from a USGS model reference file. Both readers return a flat
// Attribs map limited to a fixed set of recognized keys; values that do not
// convert to the key's type are dropped.
package reference

import (
	"strconv"

	"github.com/chrissnell/modeltime/internal/log"
)

// DefaultReferenceFile is the conventional name of the USGS model reference file
const DefaultReferenceFile = "usgs.model.reference"

// Attribs maps recognized keys to typed values (float64, int, string, or nil)
type Attribs map[string]interface{}

// NotFound is returned in place of Attribs when the reference file does not
// exist. It is a nil map, so lookups on it find nothing.
var NotFound Attribs

// String returns the value of key when it is a non-empty string
func (a Attribs) String(key string) (string, bool) {
	s, ok := a[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Float returns the value of key when it is a float
func (a Attribs) Float(key string) (float64, bool) {
	f, ok := a[key].(float64)
	return f, ok
}

// Int returns the value of key when it is an integer
func (a Attribs) Int(key string) (int, bool) {
	i, ok := a[key].(int)
	return i, ok
}

type caster func(string) (interface{}, error)

func castFloat(s string) (interface{}, error) {
	return strconv.ParseFloat(s, 64)
}

func castInt(s string) (interface{}, error) {
	return strconv.Atoi(s)
}

func castString(s string) (interface{}, error) {
	return s, nil
}

// cast converts raw with the caster registered for key. Unknown keys and
// failed conversions report false.
func cast(table map[string]caster, key, raw string) (interface{}, bool) {
	c, ok := table[key]
	if !ok {
		return nil, false
	}
	val, err := c(raw)
	if err != nil {
		log.Debugw("dropping reference value", "key", key, "value", raw, "error", err)
		return nil, false
	}
	return val, true
}
