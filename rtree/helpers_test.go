package rtree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/geoindex/geom"
)

type item struct {
	id  int
	box geom.Box
}

func (it item) String() string {
	return fmt.Sprintf("#%d", it.id)
}

func itemBox(it item) geom.Box { return it.box }

func sameItem(a, b item) bool { return a.id == b.id }

func pt(id int, x, y float64) item {
	return item{id: id, box: geom.Pt(x, y)}
}

func makeTree(t testing.TB, max, min int, splitter Redistributor) *Tree[item] {
	t.Helper()
	tree, err := New(Config[item]{
		Parameters: Parameters{MaxElements: max, MinElements: min},
		Indexable:  itemBox,
		Splitter:   splitter,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustCheck(t testing.TB, tree *Tree[item]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

// randomItem returns a point (every other call) or a small rectangle inside
// the 1000x1000 square.
func randomItem(r *rand.Rand, id int) item {
	x, y := r.Float64()*1000, r.Float64()*1000
	if id%2 == 0 {
		return pt(id, x, y)
	}
	return item{id: id, box: geom.Rect(x, y, x+r.Float64()*20, y+r.Float64()*20)}
}

// twoLeafTree builds a tree of height 2 by hand: a root with a left and a
// right leaf, each holding 4 points of a cluster around (0,0) or (100,100).
func twoLeafTree(t testing.TB) (tree *Tree[item], left, right nodeRef) {
	t.Helper()
	tree = makeTree(t, 4, 2, Quadratic{})
	left = tree.nodes.newLeaf()
	right = tree.nodes.newLeaf()
	tree.nodes.leaf(left).values = append(tree.nodes.leaf(left).values,
		pt(1, 0, 0), pt(2, 1, 0), pt(3, 0, 1), pt(4, 1, 1))
	tree.nodes.leaf(right).values = append(tree.nodes.leaf(right).values,
		pt(5, 100, 100), pt(6, 101, 100), pt(7, 100, 101), pt(8, 101, 101))
	root := tree.nodes.newInner()
	tree.nodes.inner(root).push(tree.nodeBox(left), left)
	tree.nodes.inner(root).push(tree.nodeBox(right), right)
	tree.root = root
	tree.leafsLevel = 1
	tree.size = 8
	mustCheck(t, tree)
	return tree, left, right
}

func collect(tree *Tree[item]) map[int]bool {
	ids := make(map[int]bool)
	tree.ForEach(func(it item) bool {
		ids[it.id] = true
		return true
	})
	return ids
}
