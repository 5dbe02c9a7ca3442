package rtree

import (
	"cmp"
	"math"
	"slices"

	"github.com/npillmayer/geoindex/geom"
)

// RStar is the R*-tree split. It selects the split axis with the smallest sum
// of group margins over all legal distributions, then takes the distribution
// along that axis with the least overlap between the groups, breaking ties by
// total content.
type RStar struct{}

// Redistribute implements Redistributor.
func (RStar) Redistribute(boxes []geom.Box, p Parameters) ([]int, []int) {
	assert(len(boxes) >= 2*p.MinElements, "R* split needs at least 2*MinElements elements")
	order := make([]int, len(boxes))
	bestAxis := 0
	smallestMargin := math.Inf(1)
	for axis := 0; axis < boxes[0].Dims(); axis++ {
		var margin float64
		for _, byMax := range []bool{false, true} {
			sortAlong(order, boxes, axis, byMax)
			eachDistribution(order, boxes, p, func(_ int, b1, b2 geom.Box) {
				margin += b1.Margin() + b2.Margin()
			})
		}
		if margin < smallestMargin {
			smallestMargin = margin
			bestAxis = axis
		}
	}
	var best []int
	bestK := 0
	smallestOverlap, smallestContent := math.Inf(1), math.Inf(1)
	for _, byMax := range []bool{false, true} {
		sortAlong(order, boxes, bestAxis, byMax)
		eachDistribution(order, boxes, p, func(k int, b1, b2 geom.Box) {
			overlap := b1.OverlapContent(b2)
			content := b1.Content() + b2.Content()
			if overlap < smallestOverlap || (overlap == smallestOverlap && content < smallestContent) {
				smallestOverlap, smallestContent = overlap, content
				best = append(best[:0], order...)
				bestK = k
			}
		})
	}
	return slices.Clone(best[:bestK]), slices.Clone(best[bestK:])
}

// sortAlong resets order to the identity permutation and sorts it by the
// lower (or upper) bound of boxes on axis.
func sortAlong(order []int, boxes []geom.Box, axis int, byMax bool) {
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if byMax {
			return cmp.Or(cmp.Compare(boxes[a].Max(axis), boxes[b].Max(axis)),
				cmp.Compare(boxes[a].Min(axis), boxes[b].Min(axis)))
		}
		return cmp.Or(cmp.Compare(boxes[a].Min(axis), boxes[b].Min(axis)),
			cmp.Compare(boxes[a].Max(axis), boxes[b].Max(axis)))
	})
}

// eachDistribution calls fn for every split of order into a prefix of k and a
// suffix of len(order)-k elements where both parts hold at least MinElements.
func eachDistribution(order []int, boxes []geom.Box, p Parameters, fn func(k int, b1, b2 geom.Box)) {
	n := len(order)
	prefix := make([]geom.Box, n+1)
	suffix := make([]geom.Box, n+1)
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i]
		prefix[i+1].Expand(boxes[order[i]])
	}
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1]
		suffix[i].Expand(boxes[order[i]])
	}
	for k := p.MinElements; k <= n-p.MinElements; k++ {
		fn(k, prefix[k], suffix[k])
	}
}
