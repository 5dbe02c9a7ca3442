package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// parseBound reads a query window from 4 arguments "x0 y0 x1 y1".
func parseBound(args []string) (orb.Bound, error) {
	if len(args) != 4 {
		return orb.Bound{}, fmt.Errorf("expected 4 coordinates for a window, have %d", len(args))
	}
	var c [4]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return orb.Bound{}, fmt.Errorf("invalid coordinate %q", arg)
		}
		c[i] = v
	}
	return orb.MultiPoint{{c[0], c[1]}, {c[2], c[3]}}.Bound(), nil
}
