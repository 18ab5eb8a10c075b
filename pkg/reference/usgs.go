package reference

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var usgsCasters = map[string]caster{
	"xll":        castFloat,
	"yll":        castFloat,
	"xul":        castFloat,
	"yul":        castFloat,
	"rotation":   castFloat,
	"epsg":       castInt,
	"proj4":      castString,
	"start_date": castString,
	"start_time": castString,
	"time_units": castString,
}

// ReadUSGSModelReference reads a usgs.model.reference file made of
// whitespace-separated "key value..." lines. '#' starts a comment. Multi-word
// values are joined with single spaces. A missing file yields NotFound and a
// nil error.
func ReadUSGSModelReference(path string) (Attribs, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotFound, nil
		}
		return nil, fmt.Errorf("could not open model reference file: %w", err)
	}
	defer f.Close()

	ref := Attribs{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		key := fields[0]
		if val, ok := cast(usgsCasters, key, strings.Join(fields[1:], " ")); ok {
			ref[key] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading model reference file %s: %w", path, err)
	}

	return ref, nil
}
