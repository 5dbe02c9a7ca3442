package rtree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Dump writes an indented rendering of the tree structure to w (for
// debugging purposes). Inner nodes show the stored box of each child, leaves
// show their values together with their boxes.
func (t *Tree[V]) Dump(w io.Writer) error {
	if t == nil || t.root == nilRef {
		_, err := io.WriteString(w, "<empty tree>\n")
		return err
	}
	root := treeprint.NewWithRoot(fmt.Sprintf("node %d (leafs level %d, %d values)",
		t.root, t.leafsLevel, t.size))
	t.dumpNode(root, t.root)
	_, err := io.WriteString(w, root.String())
	return err
}

func (t *Tree[V]) dumpNode(branch treeprint.Tree, ref nodeRef) {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		for _, v := range n.values {
			branch.AddMetaNode(t.cfg.Indexable(v).String(), fmt.Sprintf("%v", v))
		}
	case *innerNode:
		for i, child := range n.children {
			kind := "inner"
			if t.nodes.node(child).isLeaf() {
				kind = "leaf"
			}
			sub := branch.AddMetaBranch(n.boxes[i].String(), fmt.Sprintf("%s %d", kind, child))
			t.dumpNode(sub, child)
		}
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Values     int
	Leaves     int
	InnerNodes int
	LeafsLevel int
	// NodesPerLevel[d] is the number of nodes d edges below the root.
	NodesPerLevel []int
}

// Stats walks the tree and counts nodes per level.
func (t *Tree[V]) Stats() Stats {
	var s Stats
	if t == nil || t.root == nilRef {
		return s
	}
	s.Values = t.size
	s.LeafsLevel = t.leafsLevel
	s.NodesPerLevel = make([]int, t.leafsLevel+1)
	t.countNodes(t.root, 0, &s)
	return s
}

func (t *Tree[V]) countNodes(ref nodeRef, depth int, s *Stats) {
	s.NodesPerLevel[depth]++
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		s.Leaves++
	case *innerNode:
		s.InnerNodes++
		for _, child := range n.children {
			t.countNodes(child, depth+1, s)
		}
	}
}
