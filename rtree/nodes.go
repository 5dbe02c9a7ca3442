package rtree

import "github.com/npillmayer/geoindex/geom"

// nodeRef is a stable handle of a node in the tree's arena.
type nodeRef int32

const nilRef nodeRef = -1

// treeNode is either a *leafNode[V] or an *innerNode.
type treeNode interface {
	isLeaf() bool
	size() int
}

type leafNode[V any] struct {
	values []V
}

func (l *leafNode[V]) isLeaf() bool { return true }
func (l *leafNode[V]) size() int    { return len(l.values) }

type innerNode struct {
	// boxes[i] covers everything reachable from children[i].
	// len(boxes) == len(children) at all times.
	boxes    []geom.Box
	children []nodeRef
}

func (n *innerNode) isLeaf() bool { return false }
func (n *innerNode) size() int    { return len(n.children) }

func (n *innerNode) push(box geom.Box, child nodeRef) {
	n.boxes = append(n.boxes, box)
	n.children = append(n.children, child)
}

func (n *innerNode) removeAt(i int) {
	assert(i >= 0 && i < len(n.children), "innerNode.removeAt index out of range")
	n.boxes = removeRange(n.boxes, i, i+1)
	n.children = removeRange(n.children, i, i+1)
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, cap(src))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// pick collects src[i] for every i in indices, in order.
func pick[T any](src []T, indices []int, capacity int) []T {
	out := make([]T, 0, capacity)
	for _, i := range indices {
		out = append(out, src[i])
	}
	return out
}

// unionOf is the tight box over boxes[i] for every i in indices.
func unionOf(boxes []geom.Box, indices []int) geom.Box {
	var u geom.Box
	for _, i := range indices {
		u.Expand(boxes[i])
	}
	return u
}
