package rtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/geoindex/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCollinearInsertsKeepInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoindex")
	defer teardown()

	for _, rd := range redistributors {
		tree := makeTree(t, 4, 2, rd.splitter)
		for i := range 200 {
			tree.Insert(pt(i, float64(i), 0))
			if err := tree.Check(); err != nil {
				t.Fatalf("%s: after insert #%d: %v", rd.name, i, err)
			}
		}
		if tree.LeafsLevel() < 2 {
			t.Errorf("%s: expected leafs level >= 2 for 200 values, is %d", rd.name, tree.LeafsLevel())
		}
		if tree.Len() != 200 || len(collect(tree)) != 200 {
			t.Errorf("%s: expected 200 values, have %d", rd.name, tree.Len())
		}
		box, ok := tree.Bounds()
		if !ok || box != geom.Rect(0, 0, 199, 0) {
			t.Errorf("%s: unexpected bounds %v", rd.name, box)
		}
	}
}

func TestTreeGrowsOnlyThroughRootSplits(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, rd := range redistributors {
		tree := makeTree(t, 5, 2, rd.splitter)
		tree.Insert(randomItem(r, 0))
		for i := 1; i < 500; i++ {
			level, root := tree.LeafsLevel(), tree.root
			tree.Insert(randomItem(r, i))
			switch tree.LeafsLevel() {
			case level:
				if tree.root != root {
					t.Fatalf("%s: root replaced without growth at insert #%d", rd.name, i)
				}
			case level + 1:
				n := tree.nodes.inner(tree.root)
				if len(n.children) != 2 || n.children[0] != root {
					t.Fatalf("%s: growth at insert #%d did not install a 2-child root over the old one", rd.name, i)
				}
			default:
				t.Fatalf("%s: leafs level jumped from %d to %d", rd.name, level, tree.LeafsLevel())
			}
		}
		mustCheck(t, tree)
	}
}

func TestInsertExpandsPathBeforeDescending(t *testing.T) {
	tree, _, _ := twoLeafTree(t)
	tree.cfg.Splitter = explodingSplitter{}
	far := pt(9, -5, -5)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the split of the overflowing leaf to panic")
			}
		}()
		tree.Insert(far)
	}()
	root := tree.nodes.inner(tree.root)
	if !root.boxes[0].Contains(far.box) {
		t.Errorf("expected stored box of chosen child to cover %v, is %v", far.box, root.boxes[0])
	}
}

// explodingSplitter aborts every split.
type explodingSplitter struct{}

func (explodingSplitter) Redistribute([]geom.Box, Parameters) ([]int, []int) {
	panic("split aborted")
}

func TestInsertSubtreeAtRelativeLevel(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree := makeTree(t, 4, 2, Quadratic{})
	for i := range 100 {
		tree.Insert(randomItem(r, i))
	}
	if tree.LeafsLevel() < 2 {
		t.Fatalf("expected a tree with leafs level >= 2, is %d", tree.LeafsLevel())
	}
	sub := tree.nodes.newLeaf()
	l := tree.nodes.leaf(sub)
	l.values = append(l.values, pt(1000, 5, 5), pt(1001, 6, 6), pt(1002, 7, 5))
	tree.insert(subtreeElement[item](sub, tree.nodeBox(sub)), 1)
	tree.size += 3
	mustCheck(t, tree)
	ids := collect(tree)
	for id := 1000; id <= 1002; id++ {
		if !ids[id] {
			t.Errorf("value #%d of inserted subtree not reachable", id)
		}
	}
	found := 0
	tree.Search(geom.Rect(5, 5, 7, 6), func(it item) bool {
		if it.id >= 1000 {
			found++
		}
		return true
	})
	if found != 3 {
		t.Errorf("expected search to find 3 values of inserted subtree, found %d", found)
	}
}

func TestInsertRejectsIllegalLevels(t *testing.T) {
	build := func() *Tree[item] {
		tree := makeTree(t, 4, 2, Quadratic{})
		for i := range 20 {
			tree.Insert(pt(i, float64(i), float64(i%3)))
		}
		return tree
	}
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	tree := build()
	expectPanic("value above leaf level", func() {
		tree.insert(valueElement(pt(100, 1, 1), geom.Pt(1, 1)), 1)
	})
	tree = build()
	expectPanic("level above root", func() {
		tree.insert(valueElement(pt(100, 1, 1), geom.Pt(1, 1)), tree.LeafsLevel()+1)
	})
	tree = build()
	expectPanic("subtree into leaf", func() {
		sub := tree.nodes.newLeaf()
		tree.insert(subtreeElement[item](sub, geom.Pt(1, 1)), 0)
	})
}

func TestSearchAndForEachStopEarly(t *testing.T) {
	tree := makeTree(t, 4, 2, RStar{})
	for i := range 50 {
		tree.Insert(pt(i, float64(i%10), float64(i/10)))
	}
	calls := 0
	tree.Search(geom.Rect(0, 0, 10, 10), func(item) bool {
		calls++
		return calls < 3
	})
	if calls != 3 {
		t.Errorf("expected search to stop after 3 calls, made %d", calls)
	}
	calls = 0
	tree.ForEach(func(item) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("expected ForEach to stop after 1 call, made %d", calls)
	}
}

func TestClearReleasesAllNodes(t *testing.T) {
	tree := makeTree(t, 4, 2, Linear{})
	for i := range 64 {
		tree.Insert(pt(i, float64(i), float64(i)))
	}
	tree.Clear()
	mustCheck(t, tree)
	if tree.nodes.live() != 0 || !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("expected empty tree after Clear, %d nodes live", tree.nodes.live())
	}
	tree.Insert(pt(1, 1, 1))
	mustCheck(t, tree)
	if tree.Len() != 1 {
		t.Errorf("expected tree to be usable after Clear")
	}
}
