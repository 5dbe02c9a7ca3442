package rtree

import (
	"github.com/npillmayer/geoindex/geom"
)

// Tree is an in-memory R-tree over values of type V.
//
// The spatial extent of a value is obtained from Config.Indexable. A Tree is
// not safe for concurrent use; a single writer must be serialized externally.
type Tree[V any] struct {
	cfg        Config[V]
	nodes      arena[V]
	root       nodeRef
	leafsLevel int // number of edges from the root to every leaf
	size       int
}

// New creates an empty tree with validated configuration.
func New[V any](cfg Config[V]) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[V]{
		cfg:   cfg,
		nodes: newArena[V](cfg.Parameters),
		root:  nilRef,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config[V] {
	return t.cfg
}

// Len returns the number of values in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// LeafsLevel returns the number of edges between the root and the leaves.
// A tree consisting of a single leaf has leafs level 0.
func (t *Tree[V]) LeafsLevel() int {
	if t == nil {
		return 0
	}
	return t.leafsLevel
}

// Height returns the number of node levels, where 0 means no root node and
// 1 means a leaf root.
func (t *Tree[V]) Height() int {
	if t == nil || t.root == nilRef {
		return 0
	}
	return t.leafsLevel + 1
}

// Bounds returns the bounding box of all values. ok is false for an empty tree.
func (t *Tree[V]) Bounds() (box geom.Box, ok bool) {
	if t.IsEmpty() {
		return geom.Box{}, false
	}
	return t.nodeBox(t.root), true
}

// Insert adds a value to the tree.
func (t *Tree[V]) Insert(v V) {
	assert(t != nil, "Insert called on nil tree")
	if t.root == nilRef {
		t.root = t.nodes.newLeaf()
		t.leafsLevel = 0
	}
	t.insert(valueElement(v, t.cfg.Indexable(v)), 0)
	t.size++
}

// InsertAll adds values to the tree, one at a time.
func (t *Tree[V]) InsertAll(values ...V) {
	for _, v := range values {
		t.Insert(v)
	}
}

// Clear removes all values and releases all nodes.
func (t *Tree[V]) Clear() {
	if t == nil {
		return
	}
	if t.root != nilRef {
		t.nodes.destroy(t.root)
	}
	t.root = nilRef
	t.leafsLevel = 0
	t.size = 0
}

// Search calls fn for every value whose box intersects window. Iteration
// stops early if fn returns false.
func (t *Tree[V]) Search(window geom.Box, fn func(v V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.searchNode(t.root, window, fn)
}

func (t *Tree[V]) searchNode(ref nodeRef, window geom.Box, fn func(v V) bool) bool {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		for _, v := range n.values {
			if window.Intersects(t.cfg.Indexable(v)) && !fn(v) {
				return false
			}
		}
	case *innerNode:
		for i, child := range n.children {
			if window.Intersects(n.boxes[i]) && !t.searchNode(child, window, fn) {
				return false
			}
		}
	}
	return true
}

// ForEach walks all values in storage order. Iteration stops early if fn
// returns false.
func (t *Tree[V]) ForEach(fn func(v V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[V]) forEachNode(ref nodeRef, fn func(v V) bool) bool {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		for _, v := range n.values {
			if !fn(v) {
				return false
			}
		}
	case *innerNode:
		for _, child := range n.children {
			if !t.forEachNode(child, fn) {
				return false
			}
		}
	}
	return true
}

// nodeBox computes the tight box over the elements of ref.
func (t *Tree[V]) nodeBox(ref nodeRef) geom.Box {
	var box geom.Box
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		for _, v := range n.values {
			box.Expand(t.cfg.Indexable(v))
		}
	case *innerNode:
		for _, b := range n.boxes {
			box.Expand(b)
		}
	}
	return box
}
