package geom

import (
	"fmt"
	"math"
	"strings"
)

// MaxDims is the highest dimension a Box supports.
const MaxDims = 4

// Box is an axis-aligned bounding box of dimension 1…MaxDims.
//
// Box is a value type: copies never share storage, so an expanded copy is
//
//	exp := b
//	exp.Expand(other)
//
// The zero value is the empty box of unknown dimension. Expanding an empty box
// by a non-empty one yields the latter.
type Box struct {
	min, max [MaxDims]float64
	dims     uint8
}

// Empty returns the empty box of a given dimension. Its lower corner is +Inf
// and its upper corner is -Inf, making it the neutral element of Expand.
func Empty(dims int) Box {
	assert(dims >= 1 && dims <= MaxDims, "geom.Empty: dimension out of range")
	b := Box{dims: uint8(dims)}
	for i := 0; i < dims; i++ {
		b.min[i] = math.Inf(1)
		b.max[i] = math.Inf(-1)
	}
	return b
}

// NewBox creates a box from its lower and upper corner.
func NewBox(min, max []float64) (Box, error) {
	if len(min) != len(max) {
		return Box{}, fmt.Errorf("%w: corner dimensions differ (%d != %d)", ErrInvalidBox, len(min), len(max))
	}
	if len(min) < 1 || len(min) > MaxDims {
		return Box{}, fmt.Errorf("%w: dimension %d not in 1…%d", ErrInvalidBox, len(min), MaxDims)
	}
	b := Box{dims: uint8(len(min))}
	for i := range min {
		if math.IsNaN(min[i]) || math.IsNaN(max[i]) {
			return Box{}, fmt.Errorf("%w: NaN coordinate on axis %d", ErrInvalidBox, i)
		}
		if min[i] > max[i] {
			return Box{}, fmt.Errorf("%w: min > max on axis %d", ErrInvalidBox, i)
		}
		b.min[i], b.max[i] = min[i], max[i]
	}
	return b, nil
}

// Pt returns the degenerate box covering a single point.
func Pt(coords ...float64) Box {
	b, err := NewBox(coords, coords)
	assert(err == nil, "geom.Pt: invalid point")
	return b
}

// NewRect returns a 2-D box. Corners may be given in any order; NaN
// coordinates yield an error wrapping ErrInvalidBox.
func NewRect(x0, y0, x1, y1 float64) (Box, error) {
	return NewBox(
		[]float64{math.Min(x0, x1), math.Min(y0, y1)},
		[]float64{math.Max(x0, x1), math.Max(y0, y1)},
	)
}

// Rect is like NewRect, but panics on NaN coordinates.
func Rect(x0, y0, x1, y1 float64) Box {
	b, err := NewRect(x0, y0, x1, y1)
	assert(err == nil, "geom.Rect: invalid rectangle")
	return b
}

// Dims returns the dimension of b, or 0 for the zero value.
func (b Box) Dims() int {
	return int(b.dims)
}

// IsEmpty reports whether b covers nothing.
func (b Box) IsEmpty() bool {
	return b.dims == 0 || b.min[0] > b.max[0]
}

// Min returns the lower bound of b on axis.
func (b Box) Min(axis int) float64 {
	assert(axis >= 0 && axis < int(b.dims), "geom.Box.Min: axis out of range")
	return b.min[axis]
}

// Max returns the upper bound of b on axis.
func (b Box) Max(axis int) float64 {
	assert(axis >= 0 && axis < int(b.dims), "geom.Box.Max: axis out of range")
	return b.max[axis]
}

// Extent returns the side length of b on axis.
func (b Box) Extent(axis int) float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max(axis) - b.Min(axis)
}

// Center returns the midpoint of b on axis.
func (b Box) Center(axis int) float64 {
	return (b.Min(axis) + b.Max(axis)) / 2
}

// Expand grows b in place to cover other.
func (b *Box) Expand(other Box) {
	if other.IsEmpty() {
		return
	}
	if b.IsEmpty() {
		*b = other
		return
	}
	assert(b.dims == other.dims, "geom.Box.Expand: dimension mismatch")
	for i := 0; i < int(b.dims); i++ {
		if other.min[i] < b.min[i] {
			b.min[i] = other.min[i]
		}
		if other.max[i] > b.max[i] {
			b.max[i] = other.max[i]
		}
	}
}

// Union returns the smallest box covering all boxes.
func Union(boxes ...Box) Box {
	var u Box
	for _, b := range boxes {
		u.Expand(b)
	}
	return u
}

// Content is the hyper-volume of b: the area of a 2-D box, the volume of a 3-D
// box. Empty and degenerate boxes have content 0.
func (b Box) Content() float64 {
	if b.IsEmpty() {
		return 0
	}
	c := 1.0
	for i := 0; i < int(b.dims); i++ {
		c *= b.max[i] - b.min[i]
	}
	return c
}

// Margin is the sum of the side lengths of b.
func (b Box) Margin() float64 {
	if b.IsEmpty() {
		return 0
	}
	var m float64
	for i := 0; i < int(b.dims); i++ {
		m += b.max[i] - b.min[i]
	}
	return m
}

// Intersects reports whether b and other share at least one point.
func (b Box) Intersects(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	assert(b.dims == other.dims, "geom.Box.Intersects: dimension mismatch")
	for i := 0; i < int(b.dims); i++ {
		if b.min[i] > other.max[i] || b.max[i] < other.min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether other lies within b. Every box contains the empty box.
func (b Box) Contains(other Box) bool {
	if other.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	assert(b.dims == other.dims, "geom.Box.Contains: dimension mismatch")
	for i := 0; i < int(b.dims); i++ {
		if other.min[i] < b.min[i] || other.max[i] > b.max[i] {
			return false
		}
	}
	return true
}

// Intersection returns the common part of b and other, or the empty box.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return Box{}
	}
	r := Box{dims: b.dims}
	for i := 0; i < int(b.dims); i++ {
		r.min[i] = math.Max(b.min[i], other.min[i])
		r.max[i] = math.Min(b.max[i], other.max[i])
	}
	return r
}

// OverlapContent is the content of the intersection of b and other.
func (b Box) OverlapContent(other Box) float64 {
	return b.Intersection(other).Content()
}

func (b Box) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	writeCorner(&sb, b.min[:b.dims])
	sb.WriteByte('-')
	writeCorner(&sb, b.max[:b.dims])
	sb.WriteByte(']')
	return sb.String()
}

func writeCorner(sb *strings.Builder, c []float64) {
	sb.WriteByte('(')
	for i, x := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, "%g", x)
	}
	sb.WriteByte(')')
}
