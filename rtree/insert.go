package rtree

import "github.com/npillmayer/geoindex/geom"

// element is the item of an insertion: either a value destined for a leaf or
// an existing subtree which is appended as a child of an inner node.
type element[V any] struct {
	value V
	box   geom.Box
	node  nodeRef // nilRef for values
}

func valueElement[V any](v V, box geom.Box) element[V] {
	return element[V]{value: v, box: box, node: nilRef}
}

func subtreeElement[V any](ref nodeRef, box geom.Box) element[V] {
	return element[V]{box: box, node: ref}
}

// inserter carries the state of one insertion while it walks from the root
// down to the target node and back up again.
type inserter[V any] struct {
	t             *Tree[V]
	elem          element[V]
	relativeLevel int // height above the leaves of the node receiving elem
	level         int // depth of the node receiving elem
	// traversal state of the node currently visited
	parent       nodeRef
	childIndex   int
	currentLevel int
}

// insert adds elem to the node at height relativeLevel above the leaves.
// Values go to relativeLevel 0; subtrees go to the level above their own
// height.
func (t *Tree[V]) insert(elem element[V], relativeLevel int) {
	assert(t.root != nilRef, "there is no root node")
	assert(relativeLevel >= 0 && relativeLevel <= t.leafsLevel, "unexpected level value")
	ins := inserter[V]{
		t:             t,
		elem:          elem,
		relativeLevel: relativeLevel,
		level:         t.leafsLevel - relativeLevel,
		parent:        nilRef,
	}
	ins.visit(t.root)
}

func (ins *inserter[V]) visit(ref nodeRef) {
	switch n := ins.t.nodes.node(ref).(type) {
	case *innerNode:
		assert(ins.currentLevel < ins.t.leafsLevel, "unexpected level")
		if ins.currentLevel < ins.level {
			ins.traverse(ref, n)
		} else {
			assert(ins.currentLevel == ins.level, "unexpected level")
			assert(ins.elem.node != nilRef, "values must be inserted at leaf level")
			n.push(ins.elem.box, ins.elem.node)
		}
	case *leafNode[V]:
		assert(ins.currentLevel == ins.t.leafsLevel, "unexpected level")
		assert(ins.currentLevel == ins.level, "unexpected level")
		assert(ins.elem.node == nilRef, "subtrees cannot be inserted into leaves")
		n.values = append(n.values, ins.elem.value)
	default:
		panic("unknown tree node type")
	}
	ins.postTraverse(ref)
}

// traverse descends from inner node n into the child selected by the
// configured chooser.
//
// The stored box of the chosen child is expanded before descending. Every
// ancestor on the path therefore covers the new element, whatever happens
// further down.
func (ins *inserter[V]) traverse(ref nodeRef, n *innerNode) {
	chosen := ins.t.cfg.Chooser.Choose(n.boxes, ins.elem.box, ins.t.leafsLevel-ins.currentLevel)
	assert(chosen >= 0 && chosen < len(n.children), "chooser returned an invalid child index")

	n.boxes[chosen].Expand(ins.elem.box)

	parent, childIndex, currentLevel := ins.parent, ins.childIndex, ins.currentLevel
	ins.parent = ref
	ins.childIndex = chosen
	ins.currentLevel++

	ins.visit(n.children[chosen])

	ins.parent, ins.childIndex, ins.currentLevel = parent, childIndex, currentLevel
}

// postTraverse splits ref if it overflows.
func (ins *inserter[V]) postTraverse(ref nodeRef) {
	assert(ins.parent == nilRef || ins.t.nodes.inner(ins.parent).children[ins.childIndex] == ref,
		"if node isn't the root current child index should be valid")
	if ins.t.nodes.node(ref).size() > ins.t.cfg.Parameters.MaxElements {
		ins.t.split(ref, ins.parent, ins.childIndex)
	}
}
