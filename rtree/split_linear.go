package rtree

import (
	"math"

	"github.com/npillmayer/geoindex/geom"
)

// Linear is Guttman's linear-cost split. Seeds are the pair of elements with
// the greatest normalized separation along any axis; the remaining elements
// are assigned in order to the group needing the least enlargement.
type Linear struct{}

// Redistribute implements Redistributor.
func (Linear) Redistribute(boxes []geom.Box, p Parameters) ([]int, []int) {
	assert(len(boxes) >= 2, "linear split needs at least two elements")
	seed1, seed2 := linearSeeds(boxes)
	return distribute(boxes, p, seed1, seed2, nil)
}

func linearSeeds(boxes []geom.Box) (int, int) {
	seed1, seed2 := 0, 1
	greatest := math.Inf(-1)
	for axis := 0; axis < boxes[0].Dims(); axis++ {
		highestLow, lowestHigh := 0, 0
		minLow, maxHigh := boxes[0].Min(axis), boxes[0].Max(axis)
		for i, b := range boxes {
			if b.Min(axis) > boxes[highestLow].Min(axis) {
				highestLow = i
			}
			if b.Max(axis) < boxes[lowestHigh].Max(axis) {
				lowestHigh = i
			}
			minLow = math.Min(minLow, b.Min(axis))
			maxHigh = math.Max(maxHigh, b.Max(axis))
		}
		separation := boxes[highestLow].Min(axis) - boxes[lowestHigh].Max(axis)
		if width := maxHigh - minLow; width > 0 {
			separation /= width
		}
		if separation > greatest {
			greatest = separation
			seed1, seed2 = lowestHigh, highestLow
		}
	}
	if seed1 == seed2 {
		if seed1 == 0 {
			seed2 = 1
		} else {
			seed2 = 0
		}
	}
	return seed1, seed2
}
