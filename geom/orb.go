package geom

import "github.com/paulmach/orb"

// FromBound converts an orb bound to a 2-D box.
func FromBound(b orb.Bound) Box {
	return Rect(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// NewFromBound converts an orb bound to a 2-D box, reporting NaN
// coordinates as an error instead of panicking.
func NewFromBound(b orb.Bound) (Box, error) {
	return NewRect(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// FromPoint converts an orb point to a degenerate 2-D box.
func FromPoint(p orb.Point) Box {
	return Pt(p[0], p[1])
}

// Of returns the bounding box of any orb geometry.
func Of(g orb.Geometry) Box {
	return FromBound(g.Bound())
}

// Bound converts a 2-D box to an orb bound.
func (b Box) Bound() orb.Bound {
	assert(b.dims == 2 && !b.IsEmpty(), "geom.Box.Bound: requires a non-empty 2-D box")
	return orb.Bound{
		Min: orb.Point{b.min[0], b.min[1]},
		Max: orb.Point{b.max[0], b.max[1]},
	}
}
