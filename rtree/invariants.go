package rtree

import (
	"fmt"

	"github.com/npillmayer/geoindex/geom"
)

// Check validates structural tree invariants:
//   - every non-root node holds between MinElements and MaxElements elements,
//     an inner root holds at least 2 children,
//   - every stored child box covers everything reachable below that child,
//   - all leaves sit at the leafs level,
//   - the value count matches Len and no node is leaked.
//
// This checker is strict and meant to be used in tests.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nilRef {
		if t.size != 0 || t.leafsLevel != 0 {
			return fmt.Errorf("%w: tree without root must have size=0 and leafs level=0", ErrCorrupted)
		}
		if live := t.nodes.live(); live != 0 {
			return fmt.Errorf("%w: tree without root owns %d nodes", ErrCorrupted, live)
		}
		return nil
	}
	c := checker[V]{t: t}
	if _, err := c.checkNode(t.root, 0); err != nil {
		return err
	}
	if c.values != t.size {
		return fmt.Errorf("%w: value count mismatch (%d != %d)", ErrCorrupted, c.values, t.size)
	}
	if live := t.nodes.live(); c.nodes != live {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupted, c.nodes, live)
	}
	return nil
}

type checker[V any] struct {
	t      *Tree[V]
	nodes  int
	values int
}

// checkNode validates the subtree at ref, located depth edges below the
// root, and returns its tight bounding box.
func (c *checker[V]) checkNode(ref nodeRef, depth int) (geom.Box, error) {
	var box geom.Box
	n, ok := c.t.nodes.lookup(ref)
	if !ok {
		return box, fmt.Errorf("%w: dangling node reference %d", ErrCorrupted, ref)
	}
	c.nodes++
	p := c.t.cfg.Parameters
	isRoot := depth == 0
	if n.size() > p.MaxElements {
		return box, fmt.Errorf("%w: node %d holds %d elements, max is %d", ErrCorrupted, ref, n.size(), p.MaxElements)
	}
	if !isRoot && n.size() < p.MinElements {
		return box, fmt.Errorf("%w: node %d holds %d elements, min is %d", ErrCorrupted, ref, n.size(), p.MinElements)
	}
	switch n := n.(type) {
	case *leafNode[V]:
		if depth != c.t.leafsLevel {
			return box, fmt.Errorf("%w: leaf %d at depth %d, leafs level is %d", ErrCorrupted, ref, depth, c.t.leafsLevel)
		}
		for _, v := range n.values {
			box.Expand(c.t.cfg.Indexable(v))
		}
		c.values += len(n.values)
	case *innerNode:
		if depth >= c.t.leafsLevel {
			return box, fmt.Errorf("%w: inner node %d at depth %d, leafs level is %d", ErrCorrupted, ref, depth, c.t.leafsLevel)
		}
		if len(n.boxes) != len(n.children) {
			return box, fmt.Errorf("%w: inner node %d has %d boxes for %d children", ErrCorrupted, ref, len(n.boxes), len(n.children))
		}
		if isRoot && len(n.children) < 2 {
			return box, fmt.Errorf("%w: inner root has %d children", ErrCorrupted, len(n.children))
		}
		for i, child := range n.children {
			childBox, err := c.checkNode(child, depth+1)
			if err != nil {
				return box, err
			}
			if !n.boxes[i].Contains(childBox) {
				return box, fmt.Errorf("%w: box %v of child %d in node %d does not cover %v",
					ErrCorrupted, n.boxes[i], i, ref, childBox)
			}
			box.Expand(childBox)
		}
	default:
		return box, fmt.Errorf("%w: unknown node type %T", ErrCorrupted, n)
	}
	return box, nil
}
