package rtree

import "github.com/npillmayer/geoindex/geom"

// arena owns all nodes of a tree. Nodes are addressed by nodeRef; released
// slots are recycled.
type arena[V any] struct {
	nodes    []treeNode
	released []nodeRef
	capacity int // per-node element capacity, MaxElements+1 for transient overflow
}

func newArena[V any](p Parameters) arena[V] {
	return arena[V]{capacity: p.MaxElements + 1}
}

func (a *arena[V]) alloc(n treeNode) nodeRef {
	if k := len(a.released); k > 0 {
		ref := a.released[k-1]
		a.released = a.released[:k-1]
		a.nodes[ref] = n
		return ref
	}
	a.nodes = append(a.nodes, n)
	return nodeRef(len(a.nodes) - 1)
}

func (a *arena[V]) newLeaf() nodeRef {
	return a.alloc(&leafNode[V]{values: make([]V, 0, a.capacity)})
}

func (a *arena[V]) newInner() nodeRef {
	return a.alloc(&innerNode{
		boxes:    make([]geom.Box, 0, a.capacity),
		children: make([]nodeRef, 0, a.capacity),
	})
}

// newSibling allocates an empty node of the same kind as ref.
func (a *arena[V]) newSibling(ref nodeRef) nodeRef {
	if a.node(ref).isLeaf() {
		return a.newLeaf()
	}
	return a.newInner()
}

func (a *arena[V]) node(ref nodeRef) treeNode {
	assert(ref >= 0 && int(ref) < len(a.nodes), "arena: node reference out of range")
	n := a.nodes[ref]
	assert(n != nil, "arena: reference to released node")
	return n
}

// lookup is the non-asserting variant of node.
func (a *arena[V]) lookup(ref nodeRef) (treeNode, bool) {
	if ref < 0 || int(ref) >= len(a.nodes) || a.nodes[ref] == nil {
		return nil, false
	}
	return a.nodes[ref], true
}

func (a *arena[V]) leaf(ref nodeRef) *leafNode[V] {
	l, ok := a.node(ref).(*leafNode[V])
	assert(ok, "arena: expected leaf node")
	return l
}

func (a *arena[V]) inner(ref nodeRef) *innerNode {
	n, ok := a.node(ref).(*innerNode)
	assert(ok, "arena: expected inner node")
	return n
}

// release returns a single node slot to the arena. Children are not touched.
func (a *arena[V]) release(ref nodeRef) {
	_ = a.node(ref)
	a.nodes[ref] = nil
	a.released = append(a.released, ref)
}

// destroy releases ref and its whole subtree.
func (a *arena[V]) destroy(ref nodeRef) {
	if n, ok := a.node(ref).(*innerNode); ok {
		for _, child := range n.children {
			a.destroy(child)
		}
	}
	a.release(ref)
}

// live returns the number of allocated nodes.
func (a *arena[V]) live() int {
	return len(a.nodes) - len(a.released)
}
