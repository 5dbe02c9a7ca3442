package rtree

import (
	"math"

	"github.com/npillmayer/geoindex/geom"
)

// Quadratic is Guttman's quadratic-cost split. Seeds are the pair of elements
// wasting the most content when put together. Next is always the element with
// the strongest preference for one of the groups.
type Quadratic struct{}

// Redistribute implements Redistributor.
func (Quadratic) Redistribute(boxes []geom.Box, p Parameters) ([]int, []int) {
	assert(len(boxes) >= 2, "quadratic split needs at least two elements")
	seed1, seed2 := quadraticSeeds(boxes)
	return distribute(boxes, p, seed1, seed2, pickGreatestPreference)
}

func quadraticSeeds(boxes []geom.Box) (int, int) {
	seed1, seed2 := 0, 1
	greatest := math.Inf(-1)
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			waste := geom.Union(boxes[i], boxes[j]).Content() - boxes[i].Content() - boxes[j].Content()
			if waste > greatest {
				greatest = waste
				seed1, seed2 = i, j
			}
		}
	}
	return seed1, seed2
}

func pickGreatestPreference(boxes []geom.Box, rest []int, box1, box2 geom.Box) int {
	chosen := 0
	greatest := math.Inf(-1)
	for k, i := range rest {
		d := math.Abs(enlargement(box1, boxes[i]) - enlargement(box2, boxes[i]))
		if d > greatest {
			greatest = d
			chosen = k
		}
	}
	return chosen
}
