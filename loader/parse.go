package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/geoindex"
	"github.com/paulmach/orb"
)

// ParseLine reads one feature from a line of a point/box file.
//
// Lines hold an optional ID followed by either "x y" (a point) or
// "x0 y0 x1 y1" (a box), separated by blanks or commas. Lines without an ID
// are named after their line number. Blank lines and lines starting with '#'
// yield ok == false.
func ParseLine(line string, lineNo int) (f geoindex.Feature, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return f, false, nil
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	f.ID = "L" + strconv.Itoa(lineNo)
	if len(fields) == 3 || len(fields) == 5 {
		f.ID = fields[0]
		fields = fields[1:]
	}
	coords := make([]float64, len(fields))
	for i, field := range fields {
		if coords[i], err = strconv.ParseFloat(field, 64); err != nil || !finite(coords[i]) {
			return f, false, fmt.Errorf("line %d: invalid coordinate %q", lineNo, field)
		}
	}
	switch len(coords) {
	case 2:
		f.Geometry = orb.Point{coords[0], coords[1]}
	case 4:
		f.Geometry = orb.MultiPoint{{coords[0], coords[1]}, {coords[2], coords[3]}}.Bound()
	default:
		return f, false, fmt.Errorf("line %d: expected 2 or 4 coordinates, have %d", lineNo, len(coords))
	}
	return f, true, nil
}

// ReadFeatures parses a point/box file.
func ReadFeatures(r io.Reader) ([]geoindex.Feature, error) {
	var features []geoindex.Feature
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		f, ok, err := ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if ok {
			features = append(features, f)
		}
	}
	return features, scanner.Err()
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
