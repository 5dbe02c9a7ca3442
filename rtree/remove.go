package rtree

import "github.com/npillmayer/geoindex/geom"

// pathStep records the descent through an inner node: the child at index
// was entered.
type pathStep struct {
	node  nodeRef
	index int
}

// orphan is a node detached from the tree because it fell below MinElements.
// height is its distance from the leaves.
type orphan struct {
	ref    nodeRef
	height int
}

// Remove deletes one value equal to v, as decided by eq, and reports whether
// such a value was found.
//
// Nodes falling below MinElements on the path to the leaf are detached and
// their elements re-inserted at their original height: values into leaves,
// subtrees into inner nodes. A root left with a single inner child is
// collapsed, which is the only way the tree gets shorter.
func (t *Tree[V]) Remove(v V, eq func(a, b V) bool) bool {
	assert(eq != nil, "Remove requires an equality function")
	if t.IsEmpty() {
		return false
	}
	path := make([]pathStep, 0, t.leafsLevel)
	leaf, idx, ok := t.findValue(t.root, t.cfg.Indexable(v), v, eq, &path)
	if !ok {
		return false
	}
	l := t.nodes.leaf(leaf)
	l.values = removeRange(l.values, idx, idx+1)
	t.size--
	if t.size == 0 {
		t.Clear()
		return true
	}
	t.condense(leaf, path)
	return true
}

func (t *Tree[V]) findValue(ref nodeRef, box geom.Box, v V, eq func(a, b V) bool, path *[]pathStep) (nodeRef, int, bool) {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		for i, w := range n.values {
			if eq(v, w) {
				return ref, i, true
			}
		}
	case *innerNode:
		for i, child := range n.children {
			if !n.boxes[i].Contains(box) {
				continue
			}
			*path = append(*path, pathStep{node: ref, index: i})
			if leaf, idx, ok := t.findValue(child, box, v, eq, path); ok {
				return leaf, idx, true
			}
			*path = (*path)[:len(*path)-1]
		}
	}
	return nilRef, 0, false
}

// condense walks from a leaf which just lost a value back up to the root.
// Under-full nodes are detached, the boxes of all other nodes on the path are
// tightened. Detached elements are re-inserted afterwards.
func (t *Tree[V]) condense(leaf nodeRef, path []pathStep) {
	var orphans []orphan
	child, height := leaf, 0
	for i := len(path) - 1; i >= 0; i-- {
		parent := t.nodes.inner(path[i].node)
		ci := path[i].index
		assert(parent.children[ci] == child, "condense: path does not match tree")
		if t.nodes.node(child).size() < t.cfg.Parameters.MinElements {
			parent.removeAt(ci)
			orphans = append(orphans, orphan{ref: child, height: height})
		} else {
			parent.boxes[ci] = t.nodeBox(child)
		}
		child = path[i].node
		height++
	}
	for i := len(orphans) - 1; i >= 0; i-- {
		t.reinsert(orphans[i])
	}
	t.shorten()
}

// reinsert puts the elements of a detached node back into the tree at the
// node's original height and releases the node.
func (t *Tree[V]) reinsert(o orphan) {
	tracer().Debugf("rtree: re-inserting %d elements of detached node %d at height %d",
		t.nodes.node(o.ref).size(), o.ref, o.height)
	switch n := t.nodes.node(o.ref).(type) {
	case *leafNode[V]:
		for _, v := range n.values {
			t.insert(valueElement(v, t.cfg.Indexable(v)), 0)
		}
	case *innerNode:
		for i, child := range n.children {
			t.insert(subtreeElement[V](child, n.boxes[i]), o.height)
		}
	}
	t.nodes.release(o.ref)
}

// shorten collapses inner roots with a single child.
func (t *Tree[V]) shorten() {
	for t.leafsLevel > 0 {
		n := t.nodes.inner(t.root)
		if len(n.children) != 1 {
			return
		}
		old := t.root
		t.root = n.children[0]
		t.nodes.release(old)
		t.leafsLevel--
		tracer().Debugf("rtree: root collapsed, leafs level now %d", t.leafsLevel)
	}
}
