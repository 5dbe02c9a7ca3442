package rtree

import "github.com/npillmayer/geoindex/geom"

// split handles an overflowing node ref.
//
// A sibling of the same kind is allocated and the elements are redistributed
// between ref and the sibling. If ref has a parent, the parent's box for ref
// is replaced by the tight box of ref's remaining elements and the sibling is
// appended to the parent, which may overflow in turn; that is handled by the
// caller on its own way up. If ref is the root, a new root holding ref and
// the sibling is installed and the leafs level grows by one. No other
// operation makes the tree taller.
func (t *Tree[V]) split(ref, parent nodeRef, childIndex int) {
	second := t.nodes.newSibling(ref)
	box1, box2 := t.redistribute(ref, second)

	p := t.cfg.Parameters
	n1, n2 := t.nodes.node(ref).size(), t.nodes.node(second).size()
	assert(p.MinElements <= n1 && n1 <= p.MaxElements, "unexpected number of elements")
	assert(p.MinElements <= n2 && n2 <= p.MaxElements, "unexpected number of elements")

	if parent != nilRef {
		pn := t.nodes.inner(parent)
		assert(pn.children[childIndex] == ref, "split: child index does not address the overflowing node")
		pn.boxes[childIndex] = box1
		pn.push(box2, second)
		tracer().Debugf("rtree: split node %d into %d/%d elements, sibling %d", ref, n1, n2, second)
		return
	}

	assert(ref == t.root, "node should be the root")
	root := t.nodes.newInner()
	rn := t.nodes.inner(root)
	rn.push(box1, ref)
	rn.push(box2, second)
	t.root = root
	t.leafsLevel++
	tracer().Debugf("rtree: root split, new root %d, leafs level now %d", root, t.leafsLevel)
}

// redistribute moves elements from the overflowing node ref to the empty
// sibling second, as directed by the configured Redistributor. It returns the
// tight bounding boxes of both nodes.
func (t *Tree[V]) redistribute(ref, second nodeRef) (geom.Box, geom.Box) {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		boxes := make([]geom.Box, len(n.values))
		for i, v := range n.values {
			boxes[i] = t.cfg.Indexable(v)
		}
		first, other := t.partition(boxes)
		n2 := t.nodes.leaf(second)
		values := n.values
		n.values = pick(values, first, cap(values))
		n2.values = pick(values, other, cap(n2.values))
		return unionOf(boxes, first), unionOf(boxes, other)
	case *innerNode:
		first, other := t.partition(n.boxes)
		n2 := t.nodes.inner(second)
		boxes, children := n.boxes, n.children
		n.boxes = pick(boxes, first, cap(boxes))
		n.children = pick(children, first, cap(children))
		n2.boxes = pick(boxes, other, cap(n2.boxes))
		n2.children = pick(children, other, cap(n2.children))
		return unionOf(boxes, first), unionOf(boxes, other)
	}
	panic("unknown tree node type")
}

// partition asks the configured Redistributor for a split and checks that
// every element is assigned to exactly one group.
func (t *Tree[V]) partition(boxes []geom.Box) ([]int, []int) {
	assert(len(boxes) == t.cfg.Parameters.MaxElements+1, "redistribute called on a node not overflowing by one")
	first, second := t.cfg.Splitter.Redistribute(boxes, t.cfg.Parameters)
	seen := make([]bool, len(boxes))
	for _, group := range [][]int{first, second} {
		for _, i := range group {
			assert(i >= 0 && i < len(boxes) && !seen[i], "redistribution is not a partition")
			seen[i] = true
		}
	}
	assert(len(first)+len(second) == len(boxes), "redistribution lost elements")
	return first, second
}
