package rtree

import (
	"math"

	"github.com/npillmayer/geoindex/geom"
)

// ChooseNextNode selects the child subtree an item descends into.
//
// boxes are the stored bounding boxes of an inner node's children, indexable
// is the box of the item being inserted. relativeLevel is the height of the
// inner node above the leaves, i.e. relativeLevel == 1 means the children are
// leaves. Choose must return a valid index into boxes; it must not modify
// boxes.
type ChooseNextNode interface {
	Choose(boxes []geom.Box, indexable geom.Box, relativeLevel int) int
}

// ContentDiff chooses the child needing the least content enlargement to
// cover the item. Ties are broken by the smaller content of the expanded box;
// remaining ties go to the lowest index.
type ContentDiff struct{}

// Choose implements ChooseNextNode.
func (ContentDiff) Choose(boxes []geom.Box, indexable geom.Box, _ int) int {
	assert(len(boxes) > 0, "can't choose the next node if children are empty")
	chosen := 0
	smallestDiff := math.MaxFloat64
	smallestContent := math.MaxFloat64
	for i, box := range boxes {
		exp := box
		exp.Expand(indexable)
		content := exp.Content()
		diff := content - box.Content()
		if diff < smallestDiff || (diff == smallestDiff && content < smallestContent) {
			smallestDiff = diff
			smallestContent = content
			chosen = i
		}
	}
	return chosen
}

// MinOverlap is the R*-tree subtree choice. For nodes whose children are
// leaves it chooses the child whose expansion adds the least overlap with its
// siblings, breaking ties by content enlargement and then by content. Higher
// up it behaves like ContentDiff.
type MinOverlap struct{}

// Choose implements ChooseNextNode.
func (MinOverlap) Choose(boxes []geom.Box, indexable geom.Box, relativeLevel int) int {
	assert(len(boxes) > 0, "can't choose the next node if children are empty")
	if relativeLevel > 1 {
		return ContentDiff{}.Choose(boxes, indexable, relativeLevel)
	}
	chosen := 0
	smallestOverlap := math.MaxFloat64
	smallestDiff := math.MaxFloat64
	smallestContent := math.MaxFloat64
	for i, box := range boxes {
		exp := box
		exp.Expand(indexable)
		var overlap float64
		for j, other := range boxes {
			if j == i {
				continue
			}
			overlap += exp.OverlapContent(other) - box.OverlapContent(other)
		}
		content := exp.Content()
		diff := content - box.Content()
		if overlap < smallestOverlap ||
			(overlap == smallestOverlap && diff < smallestDiff) ||
			(overlap == smallestOverlap && diff == smallestDiff && content < smallestContent) {
			smallestOverlap = overlap
			smallestDiff = diff
			smallestContent = content
			chosen = i
		}
	}
	return chosen
}
