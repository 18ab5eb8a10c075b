package reference

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// namefileCasters lists the keys recognized in a name file header. The three
// start keys are historical spellings of the same attribute.
var namefileCasters = map[string]caster{
	"xll":            castFloat,
	"yll":            castFloat,
	"xul":            castFloat,
	"yul":            castFloat,
	"rotation":       castFloat,
	"epsg":           castInt,
	"proj4_str":      castString,
	"start_date":     castString,
	"start_datetime": castString,
	"start":          castString,
}

// joinedValueKeys may contain ':' in their values, so everything after the
// first ':' is kept.
var joinedValueKeys = map[string]bool{
	"proj4_str":      true,
	"start_date":     true,
	"start_datetime": true,
	"start":          true,
}

// ReadNamefileHeader collects attributes from the leading '#' comment lines of
// a name file. Each line holds ';'-separated key:value pairs. Reading stops at
// the first line that is not a comment.
func ReadNamefileHeader(path string) (Attribs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open name file: %w", err)
	}
	defer f.Close()

	ref := Attribs{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "#") {
			break
		}
		parseHeaderLine(ref, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading name file %s: %w", path, err)
	}

	return ref, nil
}

func parseHeaderLine(ref Attribs, line string) {
	line = strings.ReplaceAll(strings.TrimSpace(line), "#", "")
	for _, item := range strings.Split(line, ";") {
		key, raw, found := strings.Cut(item, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if !joinedValueKeys[key] {
			// only the first field after the key counts
			raw, _, _ = strings.Cut(raw, ":")
		}

		val, ok := cast(namefileCasters, key, strings.TrimSpace(raw))
		if !ok {
			continue
		}
		if val == "none" {
			val = nil
		}
		ref[key] = val
	}
}
