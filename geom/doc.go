/*
Package geom provides axis-aligned bounding boxes for spatial indexing.

A Box is the bounding volume the R-tree in package rtree works with. Indexes
only ever need two things from it: growing a box to cover another one
(Expand) and measuring it (Content). The remaining operations serve the
different split heuristics.

Conversions from and to github.com/paulmach/orb are provided for 2-D data.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package geom

import "errors"

// ErrInvalidBox signals malformed box coordinates.
var ErrInvalidBox = errors.New("geom: invalid box")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
