package rtree

import "github.com/npillmayer/geoindex/geom"

// Redistributor partitions the elements of an overflowing node.
//
// boxes holds the bounding boxes of the MaxElements+1 elements of the node.
// Redistribute returns two disjoint groups of indices into boxes which
// together cover every index exactly once. Elements of the first group stay
// in the overflowing node, elements of the second group move to a new
// sibling. Both groups must hold between p.MinElements and p.MaxElements
// indices; the tree panics otherwise.
type Redistributor interface {
	Redistribute(boxes []geom.Box, p Parameters) (first, second []int)
}

// nextPicker selects the position in rest of the element to assign next.
type nextPicker func(boxes []geom.Box, rest []int, box1, box2 geom.Box) int

// distribute grows two groups from a pair of seeds, Guttman style. Whenever a
// group needs all remaining elements to reach MinElements, it gets them.
func distribute(boxes []geom.Box, p Parameters, seed1, seed2 int, next nextPicker) (first, second []int) {
	assert(seed1 != seed2, "distribute called with identical seeds")
	first = make([]int, 0, len(boxes))
	second = make([]int, 0, len(boxes))
	first = append(first, seed1)
	second = append(second, seed2)
	box1, box2 := boxes[seed1], boxes[seed2]
	rest := make([]int, 0, len(boxes)-2)
	for i := range boxes {
		if i != seed1 && i != seed2 {
			rest = append(rest, i)
		}
	}
	for len(rest) > 0 {
		if len(first)+len(rest) <= p.MinElements {
			first = append(first, rest...)
			break
		}
		if len(second)+len(rest) <= p.MinElements {
			second = append(second, rest...)
			break
		}
		k := 0
		if next != nil {
			k = next(boxes, rest, box1, box2)
		}
		i := rest[k]
		rest = removeRange(rest, k, k+1)
		if preferFirst(boxes[i], box1, box2, len(first), len(second)) {
			first = append(first, i)
			box1.Expand(boxes[i])
		} else {
			second = append(second, i)
			box2.Expand(boxes[i])
		}
	}
	return first, second
}

// preferFirst decides group membership of an element by least content
// enlargement, then smaller group content, then smaller group size.
func preferFirst(b, box1, box2 geom.Box, n1, n2 int) bool {
	d1, d2 := enlargement(box1, b), enlargement(box2, b)
	switch {
	case d1 < d2:
		return true
	case d2 < d1:
		return false
	}
	c1, c2 := box1.Content(), box2.Content()
	switch {
	case c1 < c2:
		return true
	case c2 < c1:
		return false
	}
	return n1 <= n2
}

// enlargement is the content a box gains when expanded to cover b.
func enlargement(box, b geom.Box) float64 {
	exp := box
	exp.Expand(b)
	return exp.Content() - box.Content()
}
